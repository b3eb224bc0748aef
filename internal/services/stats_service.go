package services

import (
	"luxadmin/internal/domain"
	"luxadmin/internal/domain/models"
	"luxadmin/internal/utils"
)

// Stats are the dashboard counters derived from one booking list.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`

	// NeedsPayment counts completed rides whose customer has not been
	// charged yet (payment validated or still pending).
	NeedsPayment int `json:"needs_payment"`

	// Revenue sums base_amount+service_fee over paid bookings, in cents
	// and as a formatted two-decimal string.
	RevenueCents int64  `json:"revenue_cents"`
	Revenue      string `json:"revenue"`
}

// Aggregate is a pure reduction over bookings. An empty list yields all
// zeros; missing monetary fields count as zero.
func Aggregate(bookings []models.Booking) Stats {
	s := Stats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusPending:
			s.Pending++
		case domain.StatusApproved:
			s.Approved++
		case domain.StatusCompleted:
			s.Completed++
		case domain.StatusCancelled:
			s.Cancelled++
		}

		if b.PaymentStatus == domain.PaymentPaid {
			s.RevenueCents += b.BaseAmount + b.ServiceFee
		}
		if b.Status == domain.StatusCompleted &&
			(b.PaymentStatus == domain.PaymentValidated || b.PaymentStatus == domain.PaymentPending) {
			s.NeedsPayment++
		}
	}
	s.Revenue = utils.FormatCents(s.RevenueCents)
	return s
}
