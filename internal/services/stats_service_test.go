package services

import (
	"testing"

	"luxadmin/internal/domain"
	"luxadmin/internal/domain/models"
)

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)
	if s.Total != 0 || s.Completed != 0 || s.NeedsPayment != 0 || s.RevenueCents != 0 {
		t.Fatalf("empty list should yield zeros: %+v", s)
	}
	if s.Revenue != "0.00" {
		t.Fatalf("revenue should format as 0.00, got %q", s.Revenue)
	}
}

func TestAggregateRevenueOnlyCountsPaid(t *testing.T) {
	bookings := []models.Booking{
		{Status: domain.StatusCompleted, PaymentStatus: domain.PaymentPaid, BaseAmount: 5000, ServiceFee: 1000},
		{Status: domain.StatusCompleted, PaymentStatus: domain.PaymentPending, BaseAmount: 3000},
	}

	s := Aggregate(bookings)
	if s.RevenueCents != 6000 {
		t.Fatalf("revenue cents = %d, want 6000", s.RevenueCents)
	}
	if s.Revenue != "60.00" {
		t.Fatalf("revenue = %q, want 60.00", s.Revenue)
	}
}

func TestAggregateCountsAndAttention(t *testing.T) {
	bookings := []models.Booking{
		{Status: domain.StatusPending},
		{Status: domain.StatusApproved, PaymentStatus: domain.PaymentValidated},
		{Status: domain.StatusCompleted, PaymentStatus: domain.PaymentValidated},
		{Status: domain.StatusCompleted, PaymentStatus: domain.PaymentPending},
		{Status: domain.StatusCompleted, PaymentStatus: domain.PaymentPaid, BaseAmount: 2000},
		{Status: domain.StatusCancelled},
	}

	s := Aggregate(bookings)
	if s.Total != 6 || s.Pending != 1 || s.Approved != 1 || s.Completed != 3 || s.Cancelled != 1 {
		t.Fatalf("status counts wrong: %+v", s)
	}
	// paid and unset payment states never need attention
	if s.NeedsPayment != 2 {
		t.Fatalf("needs_payment = %d, want 2", s.NeedsPayment)
	}
	if s.RevenueCents != 2000 {
		t.Fatalf("revenue cents = %d, want 2000", s.RevenueCents)
	}
}
