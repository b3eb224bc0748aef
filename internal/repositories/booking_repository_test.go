package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"luxadmin/internal/domain"
)

func bookingRows(t *testing.T) *sqlmock.Rows {
	t.Helper()
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "pickup", "dropoff", "scheduled_at",
		"passenger_count", "luggage_count", "trip_type", "status", "payment_status",
		"base_amount", "service_fee", "created_at", "paid_at",
	}).AddRow(
		int64(1), "Ada Rider", "ada@example.com", "555-0101", "Airport", "Downtown",
		created.Add(48*time.Hour), 2, 1, "per_ride", "completed", "validated",
		int64(5000), int64(1000), created, nil,
	)
}

func TestBookingListWithStatusAndQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WithArgs("completed", "%ada%", "%ada%", "%ada%", "%ada%", "%ada%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT id,").
		WithArgs("completed", "%ada%", "%ada%", "%ada%", "%ada%", "%ada%", 25, 0).
		WillReturnRows(bookingRows(t))

	repo := BookingRepository{DB: db}
	got, total, err := repo.List(BookingFilter{Status: domain.StatusCompleted, Query: "ada"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 1 || len(got) != 1 {
		t.Fatalf("unexpected result: total=%d len=%d", total, len(got))
	}
	b := got[0]
	if b.Status != domain.StatusCompleted || b.PaymentStatus != domain.PaymentValidated {
		t.Fatalf("statuses not mapped: %+v", b)
	}
	if b.BaseAmount != 5000 || b.ServiceFee != 1000 {
		t.Fatalf("amounts not mapped: %+v", b)
	}
	if b.PaidAt != nil {
		t.Fatal("paid_at should be nil for unpaid booking")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id,").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := BookingRepository{DB: db}
	_, err = repo.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBookingSoftDeleteMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE bookings SET hidden_at=NOW").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := BookingRepository{DB: db}
	if err := repo.SoftDelete(7); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBookingMarkPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	paidAt := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE bookings SET payment_status='paid'").
		WithArgs(int64(5000), int64(1000), paidAt, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := BookingRepository{DB: db}
	if err := repo.MarkPaid(3, 5000, 1000, paidAt); err != nil {
		t.Fatalf("MarkPaid error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
