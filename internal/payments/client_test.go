package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChargeSucceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/charges" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test" {
			t.Fatalf("missing secret key header, got %q", got)
		}
		if got := r.Header.Get("Idempotency-Key"); got != "booking-9" {
			t.Fatalf("missing idempotency key, got %q", got)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload["amount"].(float64) != 6000 {
			t.Fatalf("unexpected amount %v", payload["amount"])
		}
		if payload["currency"].(string) != "usd" {
			t.Fatalf("currency default not applied: %v", payload["currency"])
		}

		json.NewEncoder(w).Encode(map[string]any{
			"status":            "succeeded",
			"payment_intent_id": "pi_123",
			"amount":            6000,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test")
	res, err := c.Charge(context.Background(), "booking-9", 6000, "", "late pickup fee")
	if err != nil {
		t.Fatalf("Charge error: %v", err)
	}
	if res.Status != StatusSucceeded || res.PaymentIntentID != "pi_123" || res.Amount != 6000 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestChargeRequiresAction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status":          "requires_action",
			"requires_action": true,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test")
	res, err := c.Charge(context.Background(), "booking-1", 100, "usd", "")
	if err != nil {
		t.Fatalf("Charge error: %v", err)
	}
	if !res.RequiresAction || res.Status == StatusSucceeded {
		t.Fatalf("expected requires_action result, got %+v", res)
	}
}

func TestChargeGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]any{"error": "upstream down"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test")
	if _, err := c.Charge(context.Background(), "booking-1", 100, "usd", ""); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}
