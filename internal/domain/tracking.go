package domain

import "time"

// TrackingEvent is one entry in a courier's tracking history.
type TrackingEvent struct {
	ID        string
	CourierID string
	Status    string
	Location  string
	UpdatedAt time.Time
}

// MonthlyEarning is the summed paid amount for one calendar month of
// booking dates. Month is the month number (1-12) regardless of year.
type MonthlyEarning struct {
	Month int
	Total float64
}

// EarningsReport aggregates the admin dashboard figures.
type EarningsReport struct {
	TotalEarnings float64
	Monthly       []MonthlyEarning
	TotalBookings int
}
