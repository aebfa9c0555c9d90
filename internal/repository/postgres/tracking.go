package postgres

import (
	"context"
	"database/sql"

	"courier/internal/domain"
	"courier/internal/repository"
)

// TrackingRepository is a PostgreSQL implementation of repository.TrackingRepository.
type TrackingRepository struct {
	q Querier
}

// NewTrackingRepository creates a new PostgreSQL tracking repository.
func NewTrackingRepository(db *sql.DB) *TrackingRepository {
	return &TrackingRepository{q: db}
}

// NewTrackingRepositoryWithTx creates a tracking repository using a transaction.
func NewTrackingRepositoryWithTx(tx *sql.Tx) *TrackingRepository {
	return &TrackingRepository{q: tx}
}

// Create appends a tracking event to a courier's history.
func (r *TrackingRepository) Create(ctx context.Context, event *domain.TrackingEvent) error {
	query := `
		INSERT INTO tracking (tracking_id, courier_id, status, location, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		event.ID,
		event.CourierID,
		event.Status,
		event.Location,
		event.UpdatedAt,
	)

	return err
}

// GetByCourierID retrieves the full tracking history for a courier,
// oldest first.
func (r *TrackingRepository) GetByCourierID(ctx context.Context, courierID string) ([]*domain.TrackingEvent, error) {
	query := `
		SELECT tracking_id, courier_id, status, location, updated_at
		FROM tracking WHERE courier_id = $1 ORDER BY updated_at ASC
	`

	rows, err := r.q.QueryContext(ctx, query, courierID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.TrackingEvent
	for rows.Next() {
		var event domain.TrackingEvent
		if err := rows.Scan(
			&event.ID,
			&event.CourierID,
			&event.Status,
			&event.Location,
			&event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	return events, rows.Err()
}

// Ensure TrackingRepository implements repository.TrackingRepository.
var _ repository.TrackingRepository = (*TrackingRepository)(nil)
