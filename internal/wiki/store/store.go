package store

import (
	"context"
	"errors"

	"github.com/auswiki/auswiki/internal/wiki/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep the concerns tidy and testable.
type Store interface {
	Users() Users
	AUs() AUs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns nil
	// and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login and the registration pre-check.
	// Lookups are case-sensitive.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username is taken; the uniqueness
	// constraint lives in the schema, not in a find-then-insert pre-check.
	CreateUser(ctx context.Context, u domain.User) error
}

type AUs interface {
	// ListAUs returns all records newest-first, each with the submitting
	// user's username resolved.
	ListAUs(ctx context.Context) ([]domain.AUWithCreator, error)

	// GetAUByID returns a record by id.
	GetAUByID(ctx context.Context, id string) (domain.AU, error)

	// CreateAU inserts a new record (id is provided by the app via ULID).
	CreateAU(ctx context.Context, au domain.AU) error

	// DeleteAU removes a record by id; ErrNotFound if it doesn't exist.
	DeleteAU(ctx context.Context, id string) error
}
