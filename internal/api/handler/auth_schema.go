package handler

import "time"

// Request and response shapes keep the PascalCase field names of the public
// contract; they are owned by the transport layer, not the domain.

type loginRequest struct {
	Username string `json:"UserName" validate:"required"`
	Password string `json:"Password" validate:"required"`
}

type loginResponse struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
	User       string    `json:"User"`
}

type registerRequest struct {
	Username string `json:"UserName" validate:"required"`
	Email    string `json:"Email"    validate:"required,email"`
	Password string `json:"Password" validate:"required"`
}

// statusResponse is the {Status, Message} envelope used by the registration
// endpoints for both success and failure.
type statusResponse struct {
	Status  string `json:"Status"`
	Message string `json:"Message"`
}

const (
	statusSuccess = "Success"
	statusError   = "Error"

	msgUserCreated = "User Created Successfully"
	msgEmailExists = "Email Address already exist"
	msgUserExists  = "Username already exist"

	// Static by contract: the client never learns which policy rule failed.
	msgPasswordPolicy = "Password should contain one uppercase letter, a number and a special symbol"
)
