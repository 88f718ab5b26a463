package ports

import (
	"context"
	"time"
)

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Username  string
}

// AuthService defines the authentication use cases.
type AuthService interface {
	// Login verifies credentials and issues a signed token. Any credential
	// failure is domain.ErrInvalidCredentials; the cause is not exposed.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Register creates a user with no roles. Uniqueness is pre-checked by
	// email only; the store may still reject on username collision.
	Register(ctx context.Context, username, email, password string) error
	// RegisterAdmin creates a user, ensures the Admin and User roles exist,
	// and assigns Admin. Uniqueness is pre-checked by username only.
	RegisterAdmin(ctx context.Context, username, email, password string) error
}
