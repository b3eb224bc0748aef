package domain

import (
	"testing"
	"time"
)

func TestCheckTransitionApproval(t *testing.T) {
	cases := []struct {
		name    string
		payment PaymentStatus
		allowed bool
	}{
		{"validated", PaymentValidated, true},
		{"legacy unset", PaymentUnset, true},
		{"pending", PaymentPending, false},
		{"paid", PaymentPaid, false},
		{"failed", PaymentFailed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckTransition(StatusPending, tc.payment, StatusApproved)
			if tc.allowed && err != nil {
				t.Fatalf("expected approval to be allowed, got %v", err)
			}
			if !tc.allowed {
				if err == nil {
					t.Fatal("expected approval to be rejected")
				}
				if !IsTransition(err) {
					t.Fatalf("expected TransitionError, got %T", err)
				}
				te := err.(TransitionError)
				if te.Reason != ReasonPaymentNotValidated {
					t.Fatalf("unexpected reason %q", te.Reason)
				}
			}
		})
	}
}

func TestCheckTransitionOtherTargets(t *testing.T) {
	for _, target := range []Status{StatusPending, StatusCompleted, StatusCancelled} {
		if err := CheckTransition(StatusApproved, PaymentFailed, target); err != nil {
			t.Fatalf("transition to %s should always be allowed, got %v", target, err)
		}
	}
}

func TestCanCharge(t *testing.T) {
	cases := []struct {
		name    string
		status  Status
		payment PaymentStatus
		want    bool
	}{
		{"completed validated", StatusCompleted, PaymentValidated, true},
		{"completed pending", StatusCompleted, PaymentPending, true},
		{"completed legacy unset", StatusCompleted, PaymentUnset, true},
		{"completed already paid", StatusCompleted, PaymentPaid, false},
		{"completed failed", StatusCompleted, PaymentFailed, false},
		{"approved validated", StatusApproved, PaymentValidated, false},
		{"pending validated", StatusPending, PaymentValidated, false},
		{"cancelled pending", StatusCancelled, PaymentPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanCharge(tc.status, tc.payment); got != tc.want {
				t.Fatalf("CanCharge(%s,%s) = %v, want %v", tc.status, tc.payment, got, tc.want)
			}
		})
	}
}

func TestEditRestricted(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		scheduled time.Time
		want      bool
	}{
		{"30 minutes out", now.Add(30 * time.Minute), true},
		{"exactly one hour out", now.Add(time.Hour), true},
		{"90 minutes out", now.Add(90 * time.Minute), false},
		{"already departed", now.Add(-2 * time.Hour), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EditRestricted(tc.scheduled, now); got != tc.want {
				t.Fatalf("EditRestricted = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusCompleted, StatusCancelled} {
		if !ValidStatus(s) {
			t.Fatalf("%s should be valid", s)
		}
	}
	if ValidStatus("archived") {
		t.Fatal("archived should not be a valid status")
	}
}
