package postgres

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/domain"
	"courier/internal/repository"
)

// ReceiptRepository is a PostgreSQL implementation of repository.ReceiptRepository.
type ReceiptRepository struct {
	q Querier
}

// NewReceiptRepository creates a new PostgreSQL receipt repository.
func NewReceiptRepository(db *sql.DB) *ReceiptRepository {
	return &ReceiptRepository{q: db}
}

// NewReceiptRepositoryWithTx creates a receipt repository using a transaction.
func NewReceiptRepositoryWithTx(tx *sql.Tx) *ReceiptRepository {
	return &ReceiptRepository{q: tx}
}

// Create persists a new receipt.
func (r *ReceiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	query := `
		INSERT INTO receipts (receipt_id, courier_id, issued_date, remarks)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.q.ExecContext(ctx, query,
		receipt.ID,
		receipt.CourierID,
		receipt.IssuedDate,
		receipt.Remarks,
	)

	return err
}

// GetByCourierID retrieves the receipt for a courier.
func (r *ReceiptRepository) GetByCourierID(ctx context.Context, courierID string) (*domain.Receipt, error) {
	query := `
		SELECT receipt_id, courier_id, issued_date, remarks
		FROM receipts WHERE courier_id = $1
	`

	var receipt domain.Receipt
	err := r.q.QueryRowContext(ctx, query, courierID).Scan(
		&receipt.ID,
		&receipt.CourierID,
		&receipt.IssuedDate,
		&receipt.Remarks,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &receipt, nil
}

// Ensure ReceiptRepository implements repository.ReceiptRepository.
var _ repository.ReceiptRepository = (*ReceiptRepository)(nil)
