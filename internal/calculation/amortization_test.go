package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment_ReferenceValues(t *testing.T) {
	tests := []struct {
		name      string
		principal int64
		rate      float64
		termYears int
		expected  float64
		tolerance float64
	}{
		// Cross-checked against standard mortgage calculators.
		{"200k at 4% over 25y", 200000, 0.04, 25, 1055.67, 0.01},
		{"300k at 5% over 30y", 300000, 0.05, 30, 1610.46, 0.01},
		{"150k at 3.5% over 20y", 150000, 0.035, 20, 869.94, 0.01},
		{"500k at 6% over 25y", 500000, 0.06, 25, 3221.51, 0.01},
		{"800k at 6% over 15y", 800000, 0.06, 15, 6750.85, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := MonthlyPayment(decimal.NewFromInt(tt.principal), decimal.NewFromFloat(tt.rate), tt.termYears)
			require.NoError(t, err)

			expected := decimal.NewFromFloat(tt.expected)
			tolerance := decimal.NewFromFloat(tt.tolerance)
			diff := payment.Sub(expected).Abs()
			assert.True(t, diff.LessThan(tolerance),
				"payment %s should be within %s of %s", payment.StringFixed(4), tolerance, expected)
		})
	}
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	// A free loan splits evenly: 100,000 over 120 months.
	payment, err := MonthlyPayment(decimal.NewFromInt(100000), decimal.Zero, 10)
	require.NoError(t, err)

	expected := decimal.NewFromInt(100000).Div(decimal.NewFromInt(120))
	assert.True(t, payment.Equal(expected), "zero-rate payment should be P/(12T), got %s", payment)
}

func TestMonthlyPayment_ZeroPrincipal(t *testing.T) {
	// Nothing financed means nothing to pay, even with no term.
	payment, err := MonthlyPayment(decimal.Zero, decimal.NewFromFloat(0.06), 0)
	require.NoError(t, err)
	assert.True(t, payment.IsZero(), "zero principal should produce zero payment")
}

func TestMonthlyPayment_Errors(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		termYears int
	}{
		{"negative principal", decimal.NewFromInt(-1000), decimal.NewFromFloat(0.05), 10},
		{"negative rate", decimal.NewFromInt(1000), decimal.NewFromFloat(-0.05), 10},
		{"zero term with principal", decimal.NewFromInt(1000), decimal.NewFromFloat(0.05), 0},
		{"negative term with principal", decimal.NewFromInt(1000), decimal.NewFromFloat(0.05), -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MonthlyPayment(tt.principal, tt.rate, tt.termYears)
			assert.Error(t, err)
		})
	}
}

func TestMonthlyPayment_ShorterTermCostsMorePerMonth(t *testing.T) {
	principal := decimal.NewFromInt(400000)
	rate := decimal.NewFromFloat(0.055)

	p15, err := MonthlyPayment(principal, rate, 15)
	require.NoError(t, err)
	p25, err := MonthlyPayment(principal, rate, 25)
	require.NoError(t, err)
	p30, err := MonthlyPayment(principal, rate, 30)
	require.NoError(t, err)

	assert.True(t, p15.GreaterThan(p25), "15y payment %s should exceed 25y payment %s", p15, p25)
	assert.True(t, p25.GreaterThan(p30), "25y payment %s should exceed 30y payment %s", p25, p30)
}

func TestMonthlyPayment_HigherRateCostsMore(t *testing.T) {
	principal := decimal.NewFromInt(250000)

	low, err := MonthlyPayment(principal, decimal.NewFromFloat(0.03), 30)
	require.NoError(t, err)
	high, err := MonthlyPayment(principal, decimal.NewFromFloat(0.07), 30)
	require.NoError(t, err)

	assert.True(t, high.GreaterThan(low), "7%% payment %s should exceed 3%% payment %s", high, low)
}
