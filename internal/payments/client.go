// Package payments talks to the external card processor that holds the
// customers' validated payment methods.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StatusSucceeded is the gateway's terminal success state. Anything else is
// either "requires_action" (customer authentication needed) or a failure.
const StatusSucceeded = "succeeded"

type chargePayload struct {
	BookingRef string `json:"booking_ref"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	Notes      string `json:"notes,omitempty"`
}

type chargeResponse struct {
	Status          string `json:"status"`
	RequiresAction  bool   `json:"requires_action"`
	PaymentIntentID string `json:"payment_intent_id"`
	Amount          int64  `json:"amount"`
	Error           string `json:"error,omitempty"`
}

// Result is the decoded gateway outcome for one charge attempt.
type Result struct {
	Status          string
	RequiresAction  bool
	PaymentIntentID string
	Amount          int64
}

type Client struct {
	BaseURL   string
	SecretKey string
	HTTP      *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		SecretKey: secretKey,
		HTTP:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Charge captures amount (cents) against the booking's card on file.
// A non-2xx response or transport error is returned as-is so the caller can
// surface it without retrying.
func (c *Client) Charge(ctx context.Context, bookingRef string, amount int64, currency, notes string) (Result, error) {
	if currency == "" {
		currency = "usd"
	}
	body, err := json.Marshal(chargePayload{
		BookingRef: bookingRef,
		Amount:     amount,
		Currency:   currency,
		Notes:      notes,
	})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Idempotency-Key", bookingRef)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("payment gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{}, err
	}

	var decoded chargeResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Result{}, fmt.Errorf("payment gateway returned malformed response (HTTP %d)", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := decoded.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return Result{}, fmt.Errorf("payment gateway error: %s (HTTP %d)", msg, resp.StatusCode)
	}

	return Result{
		Status:          decoded.Status,
		RequiresAction:  decoded.RequiresAction,
		PaymentIntentID: decoded.PaymentIntentID,
		Amount:          decoded.Amount,
	}, nil
}
