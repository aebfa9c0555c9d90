package domain

import "time"

// CourierStatus is the delivery status of a shipment. Beyond the initial
// Booked state the values are free text set by admins; no enumerated
// transition machine is enforced.
type CourierStatus string

const (
	CourierStatusBooked CourierStatus = "Booked"
)

// Courier is a single shipment record, the central entity of the system.
type Courier struct {
	ID              string
	TrackingNo      string
	SenderID        string
	ReceiverID      string // optional, empty when the receiver has no account
	ReceiverName    string
	ReceiverPhone   string
	DeliveryAddress string
	Weight          float64
	Status          CourierStatus
	BookingDate     time.Time
	DeliveryDate    time.Time // zero until an admin records delivery
}

// BookingSummary is a courier row left-joined with its payment and, for
// the admin listing, the sender's name. A courier may transiently lack a
// payment row, in which case PaymentStatus is empty.
type BookingSummary struct {
	CourierID       string
	TrackingNo      string
	SenderID        string
	SenderName      string
	ReceiverName    string
	ReceiverPhone   string
	DeliveryAddress string
	Weight          float64
	Status          CourierStatus
	Amount          float64
	PaymentStatus   PaymentStatus
	PaymentMode     string
	BookingDate     time.Time
	DeliveryDate    time.Time
}
