package tests

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"courier/internal/repository"
	"courier/internal/service"
)

// newBookingMock returns a sqlmock-backed BookingService for exercising
// the booking transaction.
func newBookingMock(t *testing.T) (*service.BookingService, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	return service.NewBookingService(db, NewMockCourierRepository()), mock, db
}

func TestBookCourier_CommitsAllFourInserts(t *testing.T) {
	bookingService, mock, db := newBookingMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO couriers`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO payments`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 25.0, "Cash on Delivery", "Pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO receipts`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO tracking`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "Booked", "Origin", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := bookingService.BookCourier(context.Background(), validBooking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !regexp.MustCompile(`^CMS[A-Z0-9]{8}$`).MatchString(result.TrackingNo) {
		t.Errorf("unexpected tracking number %q", result.TrackingNo)
	}

	// The tracking number returned matches the persisted courier's.
	if result.Courier.TrackingNo != result.TrackingNo {
		t.Errorf("result tracking number %q differs from courier's %q", result.TrackingNo, result.Courier.TrackingNo)
	}

	if result.Payment.CourierID != result.Courier.ID {
		t.Errorf("payment courier id %q differs from courier id %q", result.Payment.CourierID, result.Courier.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestBookCourier_AmountIsWeightTimesRate(t *testing.T) {
	testCases := []struct {
		weight float64
		want   float64
	}{
		{1, 10},
		{2.5, 25},
		{100, 1000},
	}

	for _, tc := range testCases {
		bookingService, mock, db := newBookingMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO couriers`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO payments`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), tc.want, "UPI", "Paid").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO receipts`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO tracking`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req := validBooking()
		req.Weight = tc.weight
		req.PaymentMode = "UPI"

		if _, err := bookingService.BookCourier(context.Background(), req); err != nil {
			t.Errorf("weight %v: unexpected error: %v", tc.weight, err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("weight %v: unmet expectations: %v", tc.weight, err)
		}

		db.Close()
	}
}

func TestBookCourier_RollsBackWhenReceiptInsertFails(t *testing.T) {
	bookingService, mock, db := newBookingMock(t)
	defer db.Close()

	insertFailure := errors.New("receipt insert failed")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO couriers`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO payments`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO receipts`).
		WillReturnError(insertFailure)
	mock.ExpectRollback()

	_, err := bookingService.BookCourier(context.Background(), validBooking())
	if !errors.Is(err, insertFailure) {
		t.Fatalf("expected receipt insert failure, got %v", err)
	}

	// The rollback expectation proves nothing was committed; no partial
	// rows survive the failed attempt.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestBookCourier_TrackingNumberCollisionAborts(t *testing.T) {
	bookingService, mock, db := newBookingMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO couriers`).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err := bookingService.BookCourier(context.Background(), validBooking())
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
