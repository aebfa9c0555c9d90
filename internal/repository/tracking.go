package repository

import (
	"context"

	"courier/internal/domain"
)

// TrackingRepository defines the persistence operations for tracking
// events.
type TrackingRepository interface {
	// Create appends a tracking event to a courier's history.
	Create(ctx context.Context, event *domain.TrackingEvent) error

	// GetByCourierID retrieves the full tracking history for a courier,
	// oldest first.
	GetByCourierID(ctx context.Context, courierID string) ([]*domain.TrackingEvent, error)
}
