package postgres

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/domain"
	"courier/internal/repository"
)

// PaymentRepository is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentRepository struct {
	q Querier
}

// NewPaymentRepository creates a new PostgreSQL payment repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{q: db}
}

// NewPaymentRepositoryWithTx creates a payment repository using a transaction.
func NewPaymentRepositoryWithTx(tx *sql.Tx) *PaymentRepository {
	return &PaymentRepository{q: tx}
}

// Create persists a new payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (payment_id, courier_id, amount, payment_mode, payment_status)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		payment.ID,
		payment.CourierID,
		payment.Amount,
		payment.Mode,
		payment.Status,
	)

	return err
}

// GetByCourierID retrieves the payment for a courier.
// Returns nil if the courier has no payment row.
func (r *PaymentRepository) GetByCourierID(ctx context.Context, courierID string) (*domain.Payment, error) {
	query := `
		SELECT payment_id, courier_id, amount, payment_mode, payment_status
		FROM payments WHERE courier_id = $1
	`

	var payment domain.Payment
	err := r.q.QueryRowContext(ctx, query, courierID).Scan(
		&payment.ID,
		&payment.CourierID,
		&payment.Amount,
		&payment.Mode,
		&payment.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}

// UpdateStatusByCourierID updates the payment status for a courier.
func (r *PaymentRepository) UpdateStatusByCourierID(ctx context.Context, courierID string, status domain.PaymentStatus) error {
	query := `UPDATE payments SET payment_status = $1 WHERE courier_id = $2`

	result, err := r.q.ExecContext(ctx, query, status, courierID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Ensure PaymentRepository implements repository.PaymentRepository.
var _ repository.PaymentRepository = (*PaymentRepository)(nil)
