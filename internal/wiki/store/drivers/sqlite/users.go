package sqlite

import (
	"context"

	"github.com/auswiki/auswiki/internal/wiki/domain"
)

type usersRepo struct {
	q querier
}

const getUserByID = `
SELECT id, username, password_hash, created_at
FROM users
WHERE id = ?
`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	err := r.q.QueryRowContext(ctx, getUserByID, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

const getUserByUsername = `
SELECT id, username, password_hash, created_at
FROM users
WHERE username = ?
`

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := r.q.QueryRowContext(ctx, getUserByUsername, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

const createUser = `
INSERT INTO users (id, username, password_hash, created_at)
VALUES (?, ?, ?, ?)
`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, createUser, u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}
