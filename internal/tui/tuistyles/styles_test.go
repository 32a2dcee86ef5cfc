package tuistyles

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"grouped thousands", decimal.NewFromInt(1234567), "$1,234,567"},
		{"small amount", decimal.NewFromInt(950), "$950"},
		{"zero", decimal.Zero, "$0"},
		{"negative", decimal.NewFromInt(-42500), "-$42,500"},
		{"rounds cents", decimal.NewFromFloat(999.6), "$1,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.amount); got != tt.expected {
				t.Errorf("FormatCurrency(%s) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatCurrencyShort(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"millions", 9500000, "$9.5M"},
		{"thousands", 950000, "$950K"},
		{"small", 950, "$950"},
		{"negative millions", -1500000, "-$1.5M"},
		{"zero", 0, "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrencyShort(tt.value); got != tt.expected {
				t.Errorf("FormatCurrencyShort(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(decimal.NewFromFloat(0.06)); got != "6.00%" {
		t.Errorf("FormatPercent(0.06) = %q, want %q", got, "6.00%")
	}
	if got := FormatPercent(decimal.Zero); got != "0.00%" {
		t.Errorf("FormatPercent(0) = %q, want %q", got, "0.00%")
	}
}
