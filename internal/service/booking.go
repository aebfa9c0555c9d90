package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"courier/internal/domain"
	"courier/internal/repository"
	"courier/internal/repository/postgres"
)

// perKgRate is the flat booking rate in currency units per unit weight.
const perKgRate = 10.0

// codMode is the payment mode that defers settlement to delivery.
// Compared case-insensitively.
const codMode = "cash on delivery"

// BookingService books couriers and lists a sender's bookings.
type BookingService struct {
	db          *sql.DB
	courierRepo repository.CourierRepository
}

// NewBookingService creates a new BookingService.
func NewBookingService(db *sql.DB, courierRepo repository.CourierRepository) *BookingService {
	return &BookingService{
		db:          db,
		courierRepo: courierRepo,
	}
}

// BookCourierRequest contains the parameters for booking a courier.
type BookCourierRequest struct {
	SenderID      string
	ReceiverName  string
	ReceiverPhone string
	Address       string
	Weight        float64
	PaymentMode   string
}

// BookCourierResult contains the outcome of a successful booking.
type BookCourierResult struct {
	TrackingNo string
	Courier    *domain.Courier
	Payment    *domain.Payment
}

// BookCourier books a shipment as a single atomic unit of work: the
// courier row, its payment, its receipt, and the initial tracking event
// are inserted in one transaction. Any failure rolls the whole unit back
// so no partial rows survive.
func (s *BookingService) BookCourier(ctx context.Context, req BookCourierRequest) (*BookCourierResult, error) {
	if req.SenderID == "" {
		return nil, ErrInvalidSenderID
	}

	if req.ReceiverName == "" {
		return nil, ErrInvalidReceiverName
	}

	if req.ReceiverPhone == "" {
		return nil, ErrInvalidReceiverPhone
	}

	if req.Address == "" {
		return nil, ErrInvalidAddress
	}

	if req.Weight <= 0 {
		return nil, ErrInvalidWeight
	}

	if req.PaymentMode == "" {
		return nil, ErrInvalidPaymentMode
	}

	trackingNo := NewTrackingNumber()
	amount := req.Weight * perKgRate
	now := time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Create transaction-scoped repositories.
	txCourierRepo := postgres.NewCourierRepositoryWithTx(tx)
	txPaymentRepo := postgres.NewPaymentRepositoryWithTx(tx)
	txReceiptRepo := postgres.NewReceiptRepositoryWithTx(tx)
	txTrackingRepo := postgres.NewTrackingRepositoryWithTx(tx)

	courier := &domain.Courier{
		ID:              uuid.New().String(),
		TrackingNo:      trackingNo,
		SenderID:        req.SenderID,
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		DeliveryAddress: req.Address,
		Weight:          req.Weight,
		Status:          domain.CourierStatusBooked,
		BookingDate:     now,
	}

	if err = txCourierRepo.Create(ctx, courier); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		ID:        uuid.New().String(),
		CourierID: courier.ID,
		Amount:    amount,
		Mode:      req.PaymentMode,
		Status:    derivePaymentStatus(req.PaymentMode),
	}

	if err = txPaymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	receipt := &domain.Receipt{
		ID:         uuid.New().String(),
		CourierID:  courier.ID,
		IssuedDate: now,
		Remarks:    fmt.Sprintf("Courier booked - %s", trackingNo),
	}

	if err = txReceiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	event := &domain.TrackingEvent{
		ID:        uuid.New().String(),
		CourierID: courier.ID,
		Status:    string(domain.CourierStatusBooked),
		Location:  "Origin",
		UpdatedAt: now,
	}

	if err = txTrackingRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return &BookCourierResult{
		TrackingNo: trackingNo,
		Courier:    courier,
		Payment:    payment,
	}, nil
}

// MyBookings retrieves all couriers booked by a sender, newest first.
func (s *BookingService) MyBookings(ctx context.Context, senderID string) ([]*domain.BookingSummary, error) {
	if senderID == "" {
		return nil, ErrInvalidSenderID
	}

	return s.courierRepo.GetBySenderID(ctx, senderID)
}

// derivePaymentStatus marks cash-on-delivery bookings Pending; any other
// mode is settled up front and marked Paid.
func derivePaymentStatus(mode string) domain.PaymentStatus {
	if strings.EqualFold(mode, codMode) {
		return domain.PaymentStatusPending
	}
	return domain.PaymentStatusPaid
}
