package domain

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Login callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email address already exists")
	ErrUsernameExists = errors.New("username already exists")

	// ErrPasswordPolicy is returned by the credential store when a password
	// fails the policy (uppercase, digit, special symbol).
	ErrPasswordPolicy = errors.New("password does not meet policy")

	ErrRoleNotFound   = errors.New("role not found")
	ErrCourseNotFound = errors.New("course not found")
)
