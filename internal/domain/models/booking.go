package models

import (
	"time"

	"luxadmin/internal/domain"
)

// Booking is a single scheduled ride request.
type Booking struct {
	ID             int64                `json:"id"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	Pickup         string               `json:"pickup"`
	Dropoff        string               `json:"dropoff"`
	ScheduledAt    time.Time            `json:"scheduled_at"`
	PassengerCount int                  `json:"passenger_count"`
	LuggageCount   int                  `json:"luggage_count"`
	TripType       string               `json:"trip_type"` // per_ride | hourly
	Status         domain.Status        `json:"status"`
	PaymentStatus  domain.PaymentStatus `json:"payment_status,omitempty"`

	// Minor-currency-unit amounts (cents).
	BaseAmount int64 `json:"base_amount,omitempty"`
	ServiceFee int64 `json:"service_fee,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

// BookingUpdate carries a full-field edit. Pointers distinguish "leave as
// is" from "set to zero value".
type BookingUpdate struct {
	Name           *string    `json:"name"`
	Email          *string    `json:"email"`
	Phone          *string    `json:"phone"`
	Pickup         *string    `json:"pickup"`
	Dropoff        *string    `json:"dropoff"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	PassengerCount *int       `json:"passenger_count"`
	LuggageCount   *int       `json:"luggage_count"`
	TripType       *string    `json:"trip_type"`
}
