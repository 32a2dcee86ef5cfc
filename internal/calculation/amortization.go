package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)

	// balanceSnap is the residual below which an amortized balance is
	// treated as retired. The unrounded payment leaves only division dust
	// after the final scheduled month.
	balanceSnap = decimal.NewFromFloat(0.01)
)

// MonthlyPayment computes the constant payment that retires principal over
// termYears of monthly installments at the annual nominal rate:
//
//	M = P * (r/12) * (1+r/12)^(12T) / ((1+r/12)^(12T) - 1)
//
// A zero rate degenerates to an even split, M = P/(12T). The payment is kept
// at full precision; rounding it to cents would compound into a multi-dollar
// residual across a full term, so rounding is left to presentation.
func MonthlyPayment(principal, annualRate decimal.Decimal, termYears int) (decimal.Decimal, error) {
	if principal.IsNegative() {
		return decimal.Zero, fmt.Errorf("principal must not be negative, got %s", principal)
	}
	if annualRate.IsNegative() {
		return decimal.Zero, fmt.Errorf("rate must not be negative, got %s", annualRate)
	}
	if principal.IsZero() {
		return decimal.Zero, nil
	}
	if termYears <= 0 {
		return decimal.Zero, fmt.Errorf("term must be positive for a %s loan, got %d years", principal, termYears)
	}

	months := decimal.NewFromInt(int64(termYears)).Mul(decimalTwelve)
	if annualRate.IsZero() {
		return principal.Div(months), nil
	}

	monthlyRate := annualRate.Div(decimalTwelve)
	compound := decimalOne.Add(monthlyRate).Pow(months)
	return principal.Mul(monthlyRate).Mul(compound).Div(compound.Sub(decimalOne)), nil
}
