package domain

import "time"

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// AllRoles is the fixed role enumeration known to the platform.
var AllRoles = []string{RoleAdmin, RoleUser}

// User models a registered account. The password credential itself is owned
// by the credential store and never appears here.
type User struct {
	ID            string    `json:"id,omitempty"`
	Username      string    `json:"UserName"`
	Email         string    `json:"Email"`
	SecurityStamp string    `json:"-"`
	Roles         []string  `json:"roles,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// DemoAccount is a seeded demo credential returned by the user-list endpoint.
// It mirrors the registration payload shape, demo passwords included.
type DemoAccount struct {
	Username string `json:"UserName"`
	Email    string `json:"Email"`
	Password string `json:"Password"`
}
