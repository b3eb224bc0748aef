package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCents renders a minor-unit amount as a plain two-decimal string,
// e.g. 6000 -> "60.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// FormatUSD renders a minor-unit amount with a dollar sign.
func FormatUSD(cents int64) string {
	if cents < 0 {
		return "-$" + FormatCents(-cents)
	}
	return "$" + FormatCents(cents)
}

// ParseDollarsToCents parses operator input like "60", "60.5" or "$60.00"
// into cents, rejecting more than two decimal places.
func ParseDollarsToCents(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	cents := math.Round(f * 100)
	if math.Abs(f*100-cents) > 1e-6 {
		return 0, fmt.Errorf("amount %q has sub-cent precision", s)
	}
	return int64(cents), nil
}
