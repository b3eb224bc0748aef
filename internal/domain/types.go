package domain

// Status is a booking lifecycle state.
type Status string

// PaymentStatus is the card-on-file state of a booking. The empty value
// means the booking predates payment tracking (legacy rows).
type PaymentStatus string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

const (
	PaymentUnset     PaymentStatus = ""
	PaymentPending   PaymentStatus = "pending"
	PaymentValidated PaymentStatus = "validated"
	PaymentPaid      PaymentStatus = "paid"
	PaymentFailed    PaymentStatus = "failed"
)

// ValidStatus reports whether s is one of the four lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}