package auth

import (
	"courier/internal/domain"
	"courier/internal/session"
)

// Decision is the outcome of a capability check.
type Decision int

const (
	// Allowed means the session may perform the operation.
	Allowed Decision = iota

	// Unauthenticated means no valid session is present.
	Unauthenticated

	// Forbidden means the session's role does not grant the operation.
	Forbidden
)

// Check classifies a session against the role an operation requires.
// Admins satisfy customer-level checks; the reverse does not hold.
func Check(sess *session.Session, required domain.Role) Decision {
	if sess == nil {
		return Unauthenticated
	}

	if required == domain.RoleAdmin && sess.Role != domain.RoleAdmin {
		return Forbidden
	}

	return Allowed
}
