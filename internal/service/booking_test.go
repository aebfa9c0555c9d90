package service

import (
	"regexp"
	"testing"

	"courier/internal/domain"
)

func TestDerivePaymentStatus(t *testing.T) {
	testCases := []struct {
		mode string
		want domain.PaymentStatus
	}{
		{"Cash on Delivery", domain.PaymentStatusPending},
		{"cash on delivery", domain.PaymentStatusPending},
		{"CASH ON DELIVERY", domain.PaymentStatusPending},
		{"cAsH oN dElIvErY", domain.PaymentStatusPending},
		{"UPI", domain.PaymentStatusPaid},
		{"Card", domain.PaymentStatusPaid},
		{"cash", domain.PaymentStatusPaid},
		{"", domain.PaymentStatusPaid},
	}

	for _, tc := range testCases {
		t.Run(tc.mode, func(t *testing.T) {
			if got := derivePaymentStatus(tc.mode); got != tc.want {
				t.Errorf("derivePaymentStatus(%q) = %s, want %s", tc.mode, got, tc.want)
			}
		})
	}
}

func TestNewTrackingNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^CMS[A-Z0-9]{8}$`)

	for i := 0; i < 100; i++ {
		no := NewTrackingNumber()
		if !pattern.MatchString(no) {
			t.Fatalf("tracking number %q does not match %s", no, pattern)
		}
	}
}

func TestNewTrackingNumber_Distinctness(t *testing.T) {
	const n = 10000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		seen[NewTrackingNumber()] = struct{}{}
	}

	// 36^8 possible values; collisions across 10k draws should be
	// vanishingly rare. Allow a single one so the test cannot flake.
	if len(seen) < n-1 {
		t.Errorf("expected ~%d distinct tracking numbers, got %d", n, len(seen))
	}
}
