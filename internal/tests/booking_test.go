package tests

import (
	"context"
	"testing"

	"courier/internal/domain"
	"courier/internal/service"
)

func validBooking() service.BookCourierRequest {
	return service.BookCourierRequest{
		SenderID:      "sender-1",
		ReceiverName:  "Asha",
		ReceiverPhone: "9876543210",
		Address:       "12 Hill Road, Pune",
		Weight:        2.5,
		PaymentMode:   "Cash on Delivery",
	}
}

func TestBookCourier_ValidatesSenderID(t *testing.T) {
	bookingService := service.NewBookingService(nil, NewMockCourierRepository())

	req := validBooking()
	req.SenderID = ""

	_, err := bookingService.BookCourier(context.Background(), req)
	if err != service.ErrInvalidSenderID {
		t.Errorf("expected ErrInvalidSenderID, got %v", err)
	}
}

func TestBookCourier_ValidatesReceiverFields(t *testing.T) {
	bookingService := service.NewBookingService(nil, NewMockCourierRepository())

	testCases := []struct {
		name    string
		mutate  func(*service.BookCourierRequest)
		wantErr error
	}{
		{"empty receiver name", func(r *service.BookCourierRequest) { r.ReceiverName = "" }, service.ErrInvalidReceiverName},
		{"empty receiver phone", func(r *service.BookCourierRequest) { r.ReceiverPhone = "" }, service.ErrInvalidReceiverPhone},
		{"empty address", func(r *service.BookCourierRequest) { r.Address = "" }, service.ErrInvalidAddress},
		{"empty payment mode", func(r *service.BookCourierRequest) { r.PaymentMode = "" }, service.ErrInvalidPaymentMode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBooking()
			tc.mutate(&req)

			_, err := bookingService.BookCourier(context.Background(), req)
			if err != tc.wantErr {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestBookCourier_ValidatesWeight(t *testing.T) {
	bookingService := service.NewBookingService(nil, NewMockCourierRepository())

	testCases := []struct {
		name   string
		weight float64
	}{
		{"zero", 0},
		{"negative", -1.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBooking()
			req.Weight = tc.weight

			_, err := bookingService.BookCourier(context.Background(), req)
			if err != service.ErrInvalidWeight {
				t.Errorf("expected ErrInvalidWeight for weight=%f, got %v", tc.weight, err)
			}
		})
	}
}

func TestMyBookings_RequiresSenderID(t *testing.T) {
	bookingService := service.NewBookingService(nil, NewMockCourierRepository())

	_, err := bookingService.MyBookings(context.Background(), "")
	if err != service.ErrInvalidSenderID {
		t.Errorf("expected ErrInvalidSenderID, got %v", err)
	}
}

func TestMyBookings_ReturnsOnlySendersCouriers(t *testing.T) {
	courierRepo := NewMockCourierRepository()
	courierRepo.Summaries = []*domain.BookingSummary{
		{CourierID: "c-3", SenderID: "sender-1", TrackingNo: "CMSAAAAAAA3"},
		{CourierID: "c-2", SenderID: "sender-2", TrackingNo: "CMSAAAAAAA2"},
		{CourierID: "c-1", SenderID: "sender-1", TrackingNo: "CMSAAAAAAA1"},
	}

	bookingService := service.NewBookingService(nil, courierRepo)

	bookings, err := bookingService.MyBookings(context.Background(), "sender-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}

	// The repository's ordering (newest first) is preserved as-is.
	if bookings[0].CourierID != "c-3" || bookings[1].CourierID != "c-1" {
		t.Errorf("expected [c-3 c-1], got [%s %s]", bookings[0].CourierID, bookings[1].CourierID)
	}
}
