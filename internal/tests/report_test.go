package tests

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"courier/internal/repository/postgres"
)

func TestTotalEarnings_SumsPaidOnly(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\)`).
		WithArgs("Paid").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1250.5))

	total, err := postgres.NewReportRepository(db).TotalEarnings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total != 1250.5 {
		t.Errorf("expected 1250.5, got %v", total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestTotalEarnings_ZeroWhenNoPayments(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\)`).
		WithArgs("Paid").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))

	total, err := postgres.NewReportRepository(db).TotalEarnings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total != 0 {
		t.Errorf("expected 0, got %v", total)
	}
}

func TestMonthlyEarnings_MapsRowsInOrder(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`EXTRACT\(MONTH FROM c\.booking_date\)`).
		WithArgs("Paid").
		WillReturnRows(sqlmock.NewRows([]string{"month", "total"}).
			AddRow(1, 500.0).
			AddRow(3, 750.0).
			AddRow(12, 20.0))

	earnings, err := postgres.NewReportRepository(db).MonthlyEarnings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(earnings) != 3 {
		t.Fatalf("expected 3 months, got %d", len(earnings))
	}

	if earnings[0].Month != 1 || earnings[0].Total != 500 {
		t.Errorf("unexpected first month %+v", earnings[0])
	}

	if earnings[2].Month != 12 || earnings[2].Total != 20 {
		t.Errorf("unexpected last month %+v", earnings[2])
	}
}

func TestMonthlyEarnings_EmptyResult(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`EXTRACT\(MONTH FROM c\.booking_date\)`).
		WithArgs("Paid").
		WillReturnRows(sqlmock.NewRows([]string{"month", "total"}))

	earnings, err := postgres.NewReportRepository(db).MonthlyEarnings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(earnings) != 0 {
		t.Errorf("expected no months, got %+v", earnings)
	}
}
