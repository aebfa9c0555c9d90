package domain

import "time"

// Receipt is issued once per courier at booking time and never mutated.
type Receipt struct {
	ID         string
	CourierID  string
	IssuedDate time.Time
	Remarks    string
}
