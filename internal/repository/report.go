package repository

import (
	"context"

	"courier/internal/domain"
)

// ReportRepository defines the aggregate reads for the admin dashboard.
// All figures are computed fresh per request; nothing is cached.
type ReportRepository interface {
	// TotalEarnings returns the sum of amounts across paid payments,
	// zero when there are none.
	TotalEarnings(ctx context.Context) (float64, error)

	// MonthlyEarnings returns paid amounts summed per calendar month of
	// the booking date, ordered by month number. Months are grouped
	// regardless of year.
	MonthlyEarnings(ctx context.Context) ([]domain.MonthlyEarning, error)
}
