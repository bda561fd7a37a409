package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/auswiki/auswiki/internal/wiki/domain"
	"github.com/auswiki/auswiki/internal/wiki/store"
	"github.com/auswiki/auswiki/pkg/cryptox"
	"github.com/auswiki/auswiki/pkg/idx"
	"github.com/auswiki/auswiki/pkg/jwtx"
	"github.com/auswiki/auswiki/pkg/slogx"
)

var (
	ErrMissingField  = errors.New("service: username and password are required")
	ErrUsernameTaken = errors.New("service: username already taken")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so login responses don't reveal which usernames exist.
	ErrInvalidCredentials = errors.New("service: invalid credentials")
)

// AuthService implements registration and login.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// RegisterResult is returned on successful registration.
type RegisterResult struct {
	UserID   string
	Username string
}

// LoginResult carries a freshly signed session token.
type LoginResult struct {
	Token     string
	Username  string
	ExpiresIn time.Duration
}

// Register creates a new user with an argon2id password hash. The username
// uniqueness check runs inside a transaction and the schema carries a unique
// index, so a concurrent duplicate registration loses cleanly instead of
// slipping past a lookup.
func (s *AuthService) Register(ctx context.Context, username, password string) (RegisterResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return RegisterResult{}, ErrMissingField
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByUsername(ctx, username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("lookup username: %w", err)
		}
		return tx.Users().CreateUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return RegisterResult{}, ErrUsernameTaken
		}
		return RegisterResult{}, err
	}

	slogx.FromContext(ctx).Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return RegisterResult{UserID: user.ID, Username: user.Username}, nil
}

// Login verifies credentials and signs a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, ErrMissingField
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("verify password: %w", err)
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Username, ttl, s.Issuer, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign session token: %w", err)
	}

	slogx.FromContext(ctx).Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return LoginResult{Token: token, Username: user.Username, ExpiresIn: ttl}, nil
}
