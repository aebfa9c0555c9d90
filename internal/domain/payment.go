package domain

// PaymentStatus represents the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// Payment is the one-to-one payment record for a courier. Mode is a free
// text label, e.g. "Cash on Delivery".
type Payment struct {
	ID        string
	CourierID string
	Amount    float64
	Mode      string
	Status    PaymentStatus
}
