package services

import (
	"context"
	"fmt"
	"time"

	"luxadmin/internal/domain"
	"luxadmin/internal/domain/models"
	"luxadmin/internal/outbox"
	"luxadmin/internal/payments"
	"luxadmin/internal/repositories"
	"luxadmin/internal/utils"
)

// Gateway abstracts the card processor for tests.
type Gateway interface {
	Charge(ctx context.Context, bookingRef string, amount int64, currency, notes string) (payments.Result, error)
}

// BookingService enforces the booking state rules in front of storage and
// the payment gateway.
type BookingService struct {
	Repo      repositories.BookingRepository
	Gateway   Gateway
	Outbox    outbox.Archive
	RequestID string
	Now       func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// ChangeStatus applies a status-only change. Approval requires validated
// payment; cancellation requires the operator's explicit confirmation flag.
// Status-only changes are exempt from the one-hour edit lock.
func (s BookingService) ChangeStatus(id int64, target domain.Status, confirmed bool) (models.Booking, error) {
	if !domain.ValidStatus(target) {
		return models.Booking{}, domain.ValidationError{Field: "status", Msg: fmt.Sprintf("unknown status %q", target)}
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}

	if err := domain.CheckTransition(b.Status, b.PaymentStatus, target); err != nil {
		return models.Booking{}, err
	}
	if target == domain.StatusCancelled && !confirmed {
		return models.Booking{}, domain.ValidationError{
			Field: "confirm",
			Msg:   "cancelling a booking requires explicit confirmation",
		}
	}

	if err := s.Repo.UpdateStatus(id, target); err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "bookings", "status_change",
		fmt.Sprintf("booking_id=%d %s -> %s", id, b.Status, target))

	b.Status = target
	return b, nil
}

// Edit applies a full-field update, refused inside the one-hour window
// before the scheduled ride.
func (s BookingService) Edit(id int64, upd models.BookingUpdate) (models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}

	if domain.EditRestricted(b.ScheduledAt, s.now()) {
		return models.Booking{}, domain.ValidationError{
			Field: "scheduled_at",
			Msg:   "full updates are not allowed within 1 hour of the scheduled ride; use a status change instead",
		}
	}
	if upd.TripType != nil && *upd.TripType != "per_ride" && *upd.TripType != "hourly" {
		return models.Booking{}, domain.ValidationError{Field: "trip_type", Msg: "must be per_ride or hourly"}
	}

	if err := s.Repo.Update(id, upd); err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "bookings", "edit", fmt.Sprintf("booking_id=%d", id))
	return s.Repo.GetByID(id)
}

// Charge captures payment for a completed ride. Eligibility is checked
// before anything leaves the process, then the gateway result decides:
// succeeded marks the booking paid and archives receipt emails; anything
// else is surfaced without retry.
func (s BookingService) Charge(ctx context.Context, id int64, req models.ChargeRequest) (models.ChargeResult, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return models.ChargeResult{}, err
	}

	if !domain.CanCharge(b.Status, b.PaymentStatus) {
		if b.PaymentStatus == domain.PaymentPaid {
			return models.ChargeResult{}, domain.ConflictError{
				Resource: "booking",
				Msg:      "booking has already been charged",
			}
		}
		return models.ChargeResult{}, domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("booking is not chargeable (status=%s payment_status=%s)", b.Status, b.PaymentStatus),
		}
	}

	amount := req.Amount
	if amount == 0 {
		amount = req.BaseAmount + req.ServiceFee
	}
	if amount <= 0 {
		return models.ChargeResult{}, domain.ValidationError{Field: "amount", Msg: "charge amount must be positive"}
	}
	baseAmount := req.BaseAmount
	serviceFee := req.ServiceFee
	if baseAmount == 0 && serviceFee == 0 {
		baseAmount = amount
	}

	res, err := s.Gateway.Charge(ctx, fmt.Sprintf("booking-%d", id), amount, req.Currency, req.Notes)
	if err != nil {
		return models.ChargeResult{}, domain.InternalError{Msg: "charge request failed", Err: err}
	}

	if res.RequiresAction {
		return models.ChargeResult{}, domain.ChargeError{Status: res.Status, RequiresAction: true}
	}
	if res.Status != payments.StatusSucceeded {
		return models.ChargeResult{}, domain.ChargeError{Status: res.Status}
	}

	paidAt := s.now()
	if err := s.Repo.MarkPaid(id, baseAmount, serviceFee, paidAt); err != nil {
		// The customer was charged; failing to record it locally is an
		// internal error the operator must see.
		return models.ChargeResult{}, domain.InternalError{Msg: "charge succeeded but booking update failed", Err: err}
	}
	utils.LogEvent(s.RequestID, "bookings", "charge",
		fmt.Sprintf("booking_id=%d amount=%d payment_intent=%s", id, amount, res.PaymentIntentID))

	s.archiveReceipts(b, amount, res.PaymentIntentID)

	return models.ChargeResult{
		Status:          res.Status,
		RequiresAction:  false,
		PaymentIntentID: res.PaymentIntentID,
		Amount:          amount,
	}, nil
}

// archiveReceipts writes the rider and driver receipt emails to the outbox.
// Archive failures never fail the charge.
func (s BookingService) archiveReceipts(b models.Booking, amount int64, paymentIntentID string) {
	body := fmt.Sprintf(
		"Ride from %s to %s on %s.\nAmount charged: %s\nPayment ID: %s\n",
		b.Pickup, b.Dropoff, utils.FormatTimestamp(b.ScheduledAt),
		utils.FormatUSD(amount), paymentIntentID,
	)
	if _, err := s.Outbox.Write(fmt.Sprintf("rider-receipt-%d", b.ID),
		fmt.Sprintf("Receipt for your ride (booking #%d)", b.ID), body); err != nil {
		utils.LogEvent(s.RequestID, "bookings", "charge", "rider receipt archive failed: "+err.Error())
	}
	if _, err := s.Outbox.Write(fmt.Sprintf("driver-receipt-%d", b.ID),
		fmt.Sprintf("Completed ride payout summary (booking #%d)", b.ID), body); err != nil {
		utils.LogEvent(s.RequestID, "bookings", "charge", "driver receipt archive failed: "+err.Error())
	}
}

// Delete hides or permanently removes a booking. Failures are surfaced to
// the caller as well as logged.
func (s BookingService) Delete(id int64, hard bool) error {
	var err error
	if hard {
		err = s.Repo.HardDelete(id)
	} else {
		err = s.Repo.SoftDelete(id)
	}
	if err != nil {
		utils.LogEvent(s.RequestID, "bookings", "delete",
			fmt.Sprintf("booking_id=%d hard=%v failed: %v", id, hard, err))
		return err
	}
	utils.LogEvent(s.RequestID, "bookings", "delete", fmt.Sprintf("booking_id=%d hard=%v", id, hard))
	return nil
}
