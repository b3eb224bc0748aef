package domain

import "time"

// ReasonPaymentNotValidated is returned when an approval is attempted
// before the customer's payment method has been validated.
const ReasonPaymentNotValidated = "payment_not_validated"

// editCutoff is the window before the scheduled ride in which full-field
// edits are locked. Status-only changes stay allowed inside it.
const editCutoff = time.Hour

// CheckTransition decides whether a booking may move to target.
//
// Approval requires a validated payment method; bookings that predate
// payment tracking (empty payment status) are exempt. Cancellation is always
// legal here: the operator confirmation step is the caller's job. Every
// other target is unrestricted.
func CheckTransition(current Status, payment PaymentStatus, target Status) error {
	if target == StatusApproved {
		if payment == PaymentValidated || payment == PaymentUnset {
			return nil
		}
		return TransitionError{
			From:   current,
			To:     target,
			Reason: ReasonPaymentNotValidated,
			Msg:    "cannot approve booking: payment not validated",
		}
	}
	return nil
}

// CanCharge reports whether a booking's customer may be charged. Only
// completed rides qualify, and a booking already marked paid is never
// chargeable again (double-charge guard).
func CanCharge(status Status, payment PaymentStatus) bool {
	if status != StatusCompleted {
		return false
	}
	switch payment {
	case PaymentValidated, PaymentPending, PaymentUnset:
		return true
	default:
		return false
	}
}

// EditRestricted reports whether full-field edits are locked because the
// ride is at most one hour away. The boundary is inclusive: a ride exactly
// one hour out is restricted. Rides already in the past are restricted too.
func EditRestricted(scheduledAt, now time.Time) bool {
	return scheduledAt.Sub(now) <= editCutoff
}
