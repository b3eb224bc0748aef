package utils

import "testing"

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{6000, "60.00"},
		{0, "0.00"},
		{5, "0.05"},
		{123456, "1234.56"},
		{-150, "-1.50"},
	}
	for _, tc := range cases {
		if got := FormatCents(tc.cents); got != tc.want {
			t.Fatalf("FormatCents(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestParseDollarsToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"60", 6000, false},
		{"60.5", 6050, false},
		{"$60.00", 6000, false},
		{" 0.05 ", 5, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.005", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDollarsToCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseDollarsToCents(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDollarsToCents(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDollarsToCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
