// Package token issues the signed bearer tokens returned by login.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TTL is the fixed token lifetime. Not configurable per call.
const TTL = 3 * time.Hour

// ErrEmptySecret is returned by NewIssuer when no signing secret is
// configured. The service must refuse to start rather than issue tokens it
// cannot sign.
var ErrEmptySecret = errors.New("token: signing secret is empty")

// Issuer builds HS256-signed tokens carrying the caller's identity and
// role membership at the moment of issuance.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

// NewIssuer returns an Issuer signing with secret. Fails when secret is empty.
func NewIssuer(secret, issuer, audience string) (*Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Issuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}, nil
}

// WithClock overrides the issuer's clock. Intended for tests.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// Issue signs a token for username with the given roles. The claim set gets
// a fresh random token id per call; roles are embedded in the order given.
func (i *Issuer) Issue(username string, roles []string) (string, time.Time, error) {
	now := i.now().UTC()
	expiresAt := now.Add(TTL)

	claims := jwt.MapClaims{
		"name":  username,
		"jti":   uuid.NewString(),
		"roles": roles,
		"iss":   i.issuer,
		"aud":   i.audience,
		"iat":   jwt.NewNumericDate(now),
		"exp":   jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
