package models

// ChargeRequest is the operator-entered charge for a completed ride.
// Amounts are cents.
type ChargeRequest struct {
	Amount     int64  `json:"amount"`
	BaseAmount int64  `json:"base_amount,omitempty"`
	ServiceFee int64  `json:"service_fee,omitempty"`
	Currency   string `json:"currency,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// ChargeResult mirrors the payment gateway response.
type ChargeResult struct {
	Status          string `json:"status"` // succeeded | requires_action | ...
	RequiresAction  bool   `json:"requires_action"`
	PaymentIntentID string `json:"payment_intent_id"`
	Amount          int64  `json:"amount"`
}
