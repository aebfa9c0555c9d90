package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"courier/internal/domain"
	"courier/internal/repository"
)

// AdminService serves the admin dashboard, booking management, and user
// listing.
type AdminService struct {
	courierRepo  repository.CourierRepository
	paymentRepo  repository.PaymentRepository
	trackingRepo repository.TrackingRepository
	reportRepo   repository.ReportRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	courierRepo repository.CourierRepository,
	paymentRepo repository.PaymentRepository,
	trackingRepo repository.TrackingRepository,
	reportRepo repository.ReportRepository,
) *AdminService {
	return &AdminService{
		courierRepo:  courierRepo,
		paymentRepo:  paymentRepo,
		trackingRepo: trackingRepo,
		reportRepo:   reportRepo,
	}
}

// EarningsReport computes the dashboard figures with three independent
// reads, fresh on every call.
func (s *AdminService) EarningsReport(ctx context.Context) (*domain.EarningsReport, error) {
	total, err := s.reportRepo.TotalEarnings(ctx)
	if err != nil {
		return nil, err
	}

	monthly, err := s.reportRepo.MonthlyEarnings(ctx)
	if err != nil {
		return nil, err
	}

	count, err := s.courierRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.EarningsReport{
		TotalEarnings: total,
		Monthly:       monthly,
		TotalBookings: count,
	}, nil
}

// ListBookings retrieves all couriers with payment and sender details,
// newest first.
func (s *AdminService) ListBookings(ctx context.Context) ([]*domain.BookingSummary, error) {
	return s.courierRepo.GetAllWithDetails(ctx)
}

// UpdateBookingRequest contains the parameters for an admin status update.
type UpdateBookingRequest struct {
	CourierID      string
	DeliveryStatus domain.CourierStatus
	PaymentStatus  domain.PaymentStatus
	DeliveryDate   time.Time // zero leaves the delivery date unset
}

// UpdateBooking applies an admin update as two independent writes: the
// courier row and the payment row are not covered by a shared
// transaction, so a failure between them leaves the courier updated and
// the payment untouched. Concurrent updates to the same courier are
// last-write-wins. A tracking event recording the new status is appended
// afterwards on a best-effort basis.
func (s *AdminService) UpdateBooking(ctx context.Context, req UpdateBookingRequest) error {
	if req.CourierID == "" {
		return ErrInvalidCourierID
	}

	if req.DeliveryStatus == "" {
		return ErrInvalidStatus
	}

	if err := s.courierRepo.UpdateStatus(ctx, req.CourierID, req.DeliveryStatus, req.DeliveryDate); err != nil {
		return err
	}

	if req.PaymentStatus != "" {
		if err := s.paymentRepo.UpdateStatusByCourierID(ctx, req.CourierID, req.PaymentStatus); err != nil {
			return err
		}
	}

	event := &domain.TrackingEvent{
		ID:        uuid.New().String(),
		CourierID: req.CourierID,
		Status:    string(req.DeliveryStatus),
		Location:  "-",
		UpdatedAt: time.Now(),
	}
	if err := s.trackingRepo.Create(ctx, event); err != nil {
		log.Printf("failed to append tracking event for courier %s: %v", req.CourierID, err)
	}

	return nil
}
