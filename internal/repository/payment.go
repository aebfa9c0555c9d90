package repository

import (
	"context"

	"courier/internal/domain"
)

// PaymentRepository defines the persistence operations for payments.
type PaymentRepository interface {
	// Create persists a new payment.
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByCourierID retrieves the payment for a courier.
	// Returns nil if the courier has no payment row.
	GetByCourierID(ctx context.Context, courierID string) (*domain.Payment, error)

	// UpdateStatusByCourierID updates the payment status for a courier.
	UpdateStatusByCourierID(ctx context.Context, courierID string, status domain.PaymentStatus) error
}
