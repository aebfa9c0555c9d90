package repository

import (
	"context"
	"time"

	"courier/internal/domain"
)

// CourierRepository defines the persistence operations for couriers.
type CourierRepository interface {
	// Create persists a new courier. Returns ErrDuplicate on a tracking
	// number collision.
	Create(ctx context.Context, courier *domain.Courier) error

	// GetByTrackingNo retrieves a courier by exact tracking number match.
	GetByTrackingNo(ctx context.Context, trackingNo string) (*domain.Courier, error)

	// GetBySenderID retrieves all couriers booked by a sender,
	// left-joined with their payments, newest booking first.
	GetBySenderID(ctx context.Context, senderID string) ([]*domain.BookingSummary, error)

	// GetAllWithDetails retrieves all couriers left-joined with payments
	// and the sender's name, newest booking first.
	GetAllWithDetails(ctx context.Context) ([]*domain.BookingSummary, error)

	// UpdateStatus sets the delivery status and, when non-zero, the
	// delivery date of a courier.
	UpdateStatus(ctx context.Context, id string, status domain.CourierStatus, deliveryDate time.Time) error

	// Count returns the total number of couriers regardless of status.
	Count(ctx context.Context) (int, error)
}
