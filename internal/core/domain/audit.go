package domain

import "time"

// Audit actions and outcomes recorded for authentication traffic.
const (
	AuditActionLogin         = "login"
	AuditActionRegister      = "register"
	AuditActionRegisterAdmin = "register_admin"

	AuditOutcomeSuccess = "success"
	AuditOutcomeFailure = "failure"
)

// AuthEvent is a single audit record. Events for the same username are
// processed in order; nothing in the request path waits on them.
type AuthEvent struct {
	Username  string
	Action    string
	Outcome   string
	Reason    string // empty on success
	RemoteIP  string
	Timestamp time.Time
}
