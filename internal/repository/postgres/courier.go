package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"courier/internal/domain"
	"courier/internal/repository"
)

// CourierRepository is a PostgreSQL implementation of repository.CourierRepository.
type CourierRepository struct {
	q Querier
}

// NewCourierRepository creates a new PostgreSQL courier repository.
func NewCourierRepository(db *sql.DB) *CourierRepository {
	return &CourierRepository{q: db}
}

// NewCourierRepositoryWithTx creates a courier repository using a transaction.
func NewCourierRepositoryWithTx(tx *sql.Tx) *CourierRepository {
	return &CourierRepository{q: tx}
}

// Create persists a new courier.
func (r *CourierRepository) Create(ctx context.Context, courier *domain.Courier) error {
	query := `
		INSERT INTO couriers (courier_id, tracking_no, sender_id, receiver_id, receiver_name, receiver_phone, delivery_address, weight, status, booking_date, delivery_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	var receiverID sql.NullString
	if courier.ReceiverID != "" {
		receiverID = sql.NullString{String: courier.ReceiverID, Valid: true}
	}

	var deliveryDate sql.NullTime
	if !courier.DeliveryDate.IsZero() {
		deliveryDate = sql.NullTime{Time: courier.DeliveryDate, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		courier.ID,
		courier.TrackingNo,
		courier.SenderID,
		receiverID,
		courier.ReceiverName,
		courier.ReceiverPhone,
		courier.DeliveryAddress,
		courier.Weight,
		courier.Status,
		courier.BookingDate,
		deliveryDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}

	return nil
}

// GetByTrackingNo retrieves a courier by exact tracking number match.
func (r *CourierRepository) GetByTrackingNo(ctx context.Context, trackingNo string) (*domain.Courier, error) {
	query := `
		SELECT courier_id, tracking_no, sender_id, receiver_id, receiver_name, receiver_phone, delivery_address, weight, status, booking_date, delivery_date
		FROM couriers WHERE tracking_no = $1
	`

	var courier domain.Courier
	var receiverID sql.NullString
	var deliveryDate sql.NullTime

	err := r.q.QueryRowContext(ctx, query, trackingNo).Scan(
		&courier.ID,
		&courier.TrackingNo,
		&courier.SenderID,
		&receiverID,
		&courier.ReceiverName,
		&courier.ReceiverPhone,
		&courier.DeliveryAddress,
		&courier.Weight,
		&courier.Status,
		&courier.BookingDate,
		&deliveryDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if receiverID.Valid {
		courier.ReceiverID = receiverID.String
	}
	if deliveryDate.Valid {
		courier.DeliveryDate = deliveryDate.Time
	}

	return &courier, nil
}

// GetBySenderID retrieves all couriers booked by a sender, left-joined
// with their payments, newest booking first.
func (r *CourierRepository) GetBySenderID(ctx context.Context, senderID string) ([]*domain.BookingSummary, error) {
	query := `
		SELECT c.courier_id, c.tracking_no, c.sender_id, c.receiver_name, c.receiver_phone, c.delivery_address, c.weight, c.status,
		       p.amount, p.payment_status, p.payment_mode, c.booking_date, c.delivery_date
		FROM couriers c
		LEFT JOIN payments p ON c.courier_id = p.courier_id
		WHERE c.sender_id = $1
		ORDER BY c.booking_date DESC
	`

	rows, err := r.q.QueryContext(ctx, query, senderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookingSummaries(rows, false)
}

// GetAllWithDetails retrieves all couriers left-joined with payments and
// the sender's name, newest booking first.
func (r *CourierRepository) GetAllWithDetails(ctx context.Context) ([]*domain.BookingSummary, error) {
	query := `
		SELECT c.courier_id, c.tracking_no, c.sender_id, u.name AS sender_name, c.receiver_name, c.receiver_phone, c.delivery_address, c.weight, c.status,
		       p.amount, p.payment_status, p.payment_mode, c.booking_date, c.delivery_date
		FROM couriers c
		LEFT JOIN payments p ON c.courier_id = p.courier_id
		LEFT JOIN users u ON c.sender_id = u.user_id
		ORDER BY c.booking_date DESC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookingSummaries(rows, true)
}

// UpdateStatus sets the delivery status and, when non-zero, the delivery
// date of a courier.
func (r *CourierRepository) UpdateStatus(ctx context.Context, id string, status domain.CourierStatus, deliveryDate time.Time) error {
	query := `
		UPDATE couriers SET status = $1, delivery_date = $2 WHERE courier_id = $3
	`

	var date sql.NullTime
	if !deliveryDate.IsZero() {
		date = sql.NullTime{Time: deliveryDate, Valid: true}
	}

	result, err := r.q.ExecContext(ctx, query, status, date, id)
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

// Count returns the total number of couriers regardless of status.
func (r *CourierRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM couriers`).Scan(&count)
	return count, err
}

// scanBookingSummaries scans joined courier/payment rows. withSender
// selects the variant that includes the sender's name.
func scanBookingSummaries(rows *sql.Rows, withSender bool) ([]*domain.BookingSummary, error) {
	var summaries []*domain.BookingSummary
	for rows.Next() {
		var s domain.BookingSummary
		var senderName sql.NullString
		var amount sql.NullFloat64
		var paymentStatus, paymentMode sql.NullString
		var deliveryDate sql.NullTime

		dest := []any{&s.CourierID, &s.TrackingNo, &s.SenderID}
		if withSender {
			dest = append(dest, &senderName)
		}
		dest = append(dest,
			&s.ReceiverName,
			&s.ReceiverPhone,
			&s.DeliveryAddress,
			&s.Weight,
			&s.Status,
			&amount,
			&paymentStatus,
			&paymentMode,
			&s.BookingDate,
			&deliveryDate,
		)

		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		if senderName.Valid {
			s.SenderName = senderName.String
		}
		if amount.Valid {
			s.Amount = amount.Float64
		}
		if paymentStatus.Valid {
			s.PaymentStatus = domain.PaymentStatus(paymentStatus.String)
		}
		if paymentMode.Valid {
			s.PaymentMode = paymentMode.String
		}
		if deliveryDate.Valid {
			s.DeliveryDate = deliveryDate.Time
		}

		summaries = append(summaries, &s)
	}

	return summaries, rows.Err()
}

// Ensure CourierRepository implements repository.CourierRepository.
var _ repository.CourierRepository = (*CourierRepository)(nil)
