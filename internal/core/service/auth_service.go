package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edustack/course-platform/internal/core/domain"
	"github.com/edustack/course-platform/internal/core/ports"
	"github.com/edustack/course-platform/internal/core/token"
)

// AuthService implements login and the two registration flows. It holds no
// state of its own; everything lives in the credential and role stores.
type AuthService struct {
	creds  ports.CredentialStore
	roles  ports.RoleStore
	issuer *token.Issuer
	logger zerolog.Logger
}

func NewAuthService(creds ports.CredentialStore, roles ports.RoleStore, issuer *token.Issuer, logger zerolog.Logger) *AuthService {
	return &AuthService{creds: creds, roles: roles, issuer: issuer, logger: logger}
}

// Login verifies the credentials and issues a signed token whose role claims
// reflect membership at this moment. Unknown username and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.creds.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.creds.VerifyPassword(ctx, user, password)
	if err != nil {
		// The user can vanish between the lookup and the verify; that must
		// stay indistinguishable from a bad password.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	roles, err := s.creds.Roles(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	signed, expiresAt, err := s.issuer.Issue(user.Username, roles)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("token issuance failed")
		return nil, err
	}

	s.logger.Info().Str("username", username).Time("expires_at", expiresAt).Msg("login succeeded")

	return &ports.LoginResult{
		Token:     signed,
		ExpiresAt: expiresAt,
		Username:  user.Username,
	}, nil
}

// Register creates a user with no roles. Uniqueness is pre-checked on email
// only; a username collision still surfaces from the store as its own error.
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	if _, err := s.creds.FindByEmail(ctx, email); err == nil {
		return domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	user := s.newUser(username, email)
	if err := s.creds.Create(ctx, user, password); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Msg("user registered")
	return nil
}

// RegisterAdmin creates a user, ensures both platform roles exist, and
// assigns Admin. Uniqueness is pre-checked on username only, not email.
func (s *AuthService) RegisterAdmin(ctx context.Context, username, email, password string) error {
	if _, err := s.creds.FindByUsername(ctx, username); err == nil {
		return domain.ErrUsernameExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	user := s.newUser(username, email)
	if err := s.creds.Create(ctx, user, password); err != nil {
		return err
	}

	for _, role := range domain.AllRoles {
		exists, err := s.roles.Exists(ctx, role)
		if err != nil {
			return err
		}
		if !exists {
			if err := s.roles.Create(ctx, role); err != nil {
				return err
			}
		}
	}

	exists, err := s.roles.Exists(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if exists {
		if err := s.roles.Assign(ctx, user.Username, domain.RoleAdmin); err != nil {
			return err
		}
	}

	s.logger.Info().Str("username", username).Msg("admin registered")
	return nil
}

func (s *AuthService) newUser(username, email string) *domain.User {
	return &domain.User{
		Username:      username,
		Email:         email,
		SecurityStamp: uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
	}
}
