package ports

import (
	"context"

	"github.com/edustack/course-platform/internal/core/domain"
)

// CredentialStore owns user records and their password credentials. Password
// hashing, verification and the password policy live behind this interface;
// the auth service never sees a hash.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists a new user with the given plaintext password. Returns
	// domain.ErrPasswordPolicy when the password is rejected and
	// domain.ErrUsernameExists / domain.ErrEmailExists on a uniqueness
	// violation.
	Create(ctx context.Context, user *domain.User, password string) error
	// VerifyPassword reports whether password matches the stored credential.
	VerifyPassword(ctx context.Context, user *domain.User, password string) (bool, error)
	// Roles returns the user's role names in assignment order.
	Roles(ctx context.Context, username string) ([]string, error)
}

// RoleStore owns the role records and user-role assignments.
type RoleStore interface {
	Exists(ctx context.Context, name string) (bool, error)
	// Create is idempotent: creating a role that already exists is a no-op.
	Create(ctx context.Context, name string) error
	Assign(ctx context.Context, username, role string) error
}
