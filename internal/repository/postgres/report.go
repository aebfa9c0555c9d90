package postgres

import (
	"context"
	"database/sql"

	"courier/internal/domain"
	"courier/internal/repository"
)

// ReportRepository is a PostgreSQL implementation of repository.ReportRepository.
type ReportRepository struct {
	q Querier
}

// NewReportRepository creates a new PostgreSQL report repository.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{q: db}
}

// TotalEarnings returns the sum of amounts across paid payments, zero
// when there are none.
func (r *ReportRepository) TotalEarnings(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments WHERE payment_status = $1
	`

	var total float64
	err := r.q.QueryRowContext(ctx, query, domain.PaymentStatusPaid).Scan(&total)
	return total, err
}

// MonthlyEarnings returns paid amounts summed per calendar month of the
// booking date, ordered by month number. Months with the same number are
// grouped together regardless of year.
func (r *ReportRepository) MonthlyEarnings(ctx context.Context) ([]domain.MonthlyEarning, error) {
	query := `
		SELECT EXTRACT(MONTH FROM c.booking_date)::int AS month, COALESCE(SUM(p.amount), 0) AS total
		FROM couriers c
		JOIN payments p ON c.courier_id = p.courier_id
		WHERE p.payment_status = $1
		GROUP BY EXTRACT(MONTH FROM c.booking_date)
		ORDER BY EXTRACT(MONTH FROM c.booking_date)
	`

	rows, err := r.q.QueryContext(ctx, query, domain.PaymentStatusPaid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var earnings []domain.MonthlyEarning
	for rows.Next() {
		var e domain.MonthlyEarning
		if err := rows.Scan(&e.Month, &e.Total); err != nil {
			return nil, err
		}
		earnings = append(earnings, e)
	}

	return earnings, rows.Err()
}

// Ensure ReportRepository implements repository.ReportRepository.
var _ repository.ReportRepository = (*ReportRepository)(nil)
