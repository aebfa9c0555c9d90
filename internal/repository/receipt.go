package repository

import (
	"context"

	"courier/internal/domain"
)

// ReceiptRepository defines the persistence operations for receipts.
type ReceiptRepository interface {
	// Create persists a new receipt. Receipts are immutable once issued.
	Create(ctx context.Context, receipt *domain.Receipt) error

	// GetByCourierID retrieves the receipt for a courier.
	GetByCourierID(ctx context.Context, courierID string) (*domain.Receipt, error)
}
