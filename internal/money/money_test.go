package money

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     float64
	}{
		{22244.44773, "KZT", 22244.45},
		{22244.44773, "USD", 22244.45},
		{1234.5, "JPY", 1235},
		{0.125, "usd", 0.13},
		{10.555, "XXX-unknown", 10.56},
	}

	for _, tt := range tests {
		if got := Round(tt.amount, tt.currency); got != tt.want {
			t.Errorf("Round(%v, %s) = %v, want %v", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1234.5, "USD", "$1,234.50"},
		{1_000_000, "USD", "$1,000,000.00"},
		{0.004, "USD", "$0.00"},
		{99.5, "NOPE", "99.50 NOPE"},
	}

	for _, tt := range tests {
		if got := Format(tt.amount, tt.currency); got != tt.want {
			t.Errorf("Format(%v, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}
