package service

import (
	"context"
	"errors"

	"courier/internal/domain"
	"courier/internal/repository"
)

// TrackingService answers tracking-number lookups.
type TrackingService struct {
	courierRepo  repository.CourierRepository
	paymentRepo  repository.PaymentRepository
	trackingRepo repository.TrackingRepository
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(
	courierRepo repository.CourierRepository,
	paymentRepo repository.PaymentRepository,
	trackingRepo repository.TrackingRepository,
) *TrackingService {
	return &TrackingService{
		courierRepo:  courierRepo,
		paymentRepo:  paymentRepo,
		trackingRepo: trackingRepo,
	}
}

// TrackResult is the outcome of a tracking lookup. Found distinguishes a
// missing tracking number from an error; Payment may be nil even when the
// courier is found.
type TrackResult struct {
	Found   bool
	Courier *domain.Courier
	Payment *domain.Payment
	History []*domain.TrackingEvent
}

// Track looks up a courier by exact tracking number and fetches its
// payment and full tracking history. The three reads are independent and
// non-transactional.
func (s *TrackingService) Track(ctx context.Context, trackingNo string) (*TrackResult, error) {
	if trackingNo == "" {
		return nil, ErrInvalidTrackingNo
	}

	courier, err := s.courierRepo.GetByTrackingNo(ctx, trackingNo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &TrackResult{Found: false}, nil
		}
		return nil, err
	}

	payment, err := s.paymentRepo.GetByCourierID(ctx, courier.ID)
	if err != nil {
		return nil, err
	}

	history, err := s.trackingRepo.GetByCourierID(ctx, courier.ID)
	if err != nil {
		return nil, err
	}

	return &TrackResult{
		Found:   true,
		Courier: courier,
		Payment: payment,
		History: history,
	}, nil
}
