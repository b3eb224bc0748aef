package utils

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatTimestamp renders a UTC RFC3339 timestamp for API payloads.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
