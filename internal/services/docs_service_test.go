package services

import (
	"testing"
	"time"

	"luxadmin/internal/domain"
	"luxadmin/internal/domain/models"
)

func TestDocsServiceGenerateReceipt(t *testing.T) {
	paidAt := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	loader := func(id int64) (models.Booking, error) {
		return models.Booking{
			ID:            id,
			Name:          "Ada Rider",
			Email:         "ada@example.com",
			Pickup:        "Airport",
			Dropoff:       "Downtown",
			ScheduledAt:   paidAt.Add(-2 * time.Hour),
			TripType:      "per_ride",
			Status:        domain.StatusCompleted,
			PaymentStatus: domain.PaymentPaid,
			BaseAmount:    5000,
			ServiceFee:    1000,
			PaidAt:        &paidAt,
		}, nil
	}

	svc := DocsService{Loader: loader}
	pdf, filename, err := svc.GenerateReceipt(9)
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if len(pdf) == 0 || filename != "RECEIPT_9.pdf" {
		t.Fatalf("unexpected output: %d bytes, name %q", len(pdf), filename)
	}
}

func TestDocsServiceRejectsUnpaid(t *testing.T) {
	loader := func(id int64) (models.Booking, error) {
		return models.Booking{ID: id, Status: domain.StatusCompleted, PaymentStatus: domain.PaymentValidated}, nil
	}

	svc := DocsService{Loader: loader}
	if _, _, err := svc.GenerateReceipt(9); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for unpaid booking, got %v", err)
	}
}
