package auth

import (
	"testing"

	"courier/internal/domain"
	"courier/internal/session"
)

func TestCheck(t *testing.T) {
	customer := &session.Session{UserID: "u-1", Role: domain.RoleCustomer}
	admin := &session.Session{UserID: "u-2", Role: domain.RoleAdmin}

	testCases := []struct {
		name     string
		sess     *session.Session
		required domain.Role
		want     Decision
	}{
		{"no session, customer op", nil, domain.RoleCustomer, Unauthenticated},
		{"no session, admin op", nil, domain.RoleAdmin, Unauthenticated},
		{"customer, customer op", customer, domain.RoleCustomer, Allowed},
		{"customer, admin op", customer, domain.RoleAdmin, Forbidden},
		{"admin, admin op", admin, domain.RoleAdmin, Allowed},
		{"admin, customer op", admin, domain.RoleCustomer, Allowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Check(tc.sess, tc.required); got != tc.want {
				t.Errorf("Check(%v, %s) = %v, want %v", tc.sess, tc.required, got, tc.want)
			}
		})
	}
}
