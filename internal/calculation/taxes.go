package calculation

import (
	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX MODEL ASSUMPTIONS:
//
// 1. Federal brackets: one filing schedule (married filing jointly by
//    default), indexed with the household inflation rate each elapsed year.
//    The scaled table for a year is derived fresh; the base table is never
//    mutated.
// 2. State tax: flat rate on income minus a fixed per-filer exemption total.
//    Goes negative for very low income and is not clamped. A documented
//    simplification of the model, not a bug.
// 3. SALT deduction: deducted state tax is capped. The cap indexes with
//    inflation from its base unless salt_cap_indexed is false.
// 4. Mortgage interest: the deductible share of interest paid is
//    min(cap, balance)/balance against the end-of-year balance.
// 5. No credits, no AMT, no FICA, no phase-outs, one jurisdiction.

// TaxCalculator evaluates the tax and deduction model for one policy. All
// methods are pure functions of their arguments; the calculator holds no
// per-run state and is safe to share across simulations.
type TaxCalculator struct {
	Policy domain.TaxPolicy
}

// NewTaxCalculator creates a calculator, filling unset policy fields with
// the built-in defaults.
func NewTaxCalculator(policy domain.TaxPolicy) *TaxCalculator {
	policy.Normalize()
	return &TaxCalculator{Policy: policy}
}

// ScaledBrackets derives the bracket table for an elapsed year by scaling
// every threshold with the inflation factor.
func (tc *TaxCalculator) ScaledBrackets(year int, inflation decimal.Decimal) []domain.TaxBracket {
	factor := domain.GrowthFactor(inflation, year)
	scaled := make([]domain.TaxBracket, len(tc.Policy.Brackets))
	for i, b := range tc.Policy.Brackets {
		scaled[i] = domain.TaxBracket{Threshold: b.Threshold.Mul(factor), Rate: b.Rate}
	}
	return scaled
}

// FederalTax walks the scaled bracket table in ascending order, taxing the
// slice of income inside each bracket at that bracket's marginal rate.
// Negative taxable income is clamped to zero first, so oversized deductions
// floor at zero tax rather than producing a refund.
func (tc *TaxCalculator) FederalTax(taxableIncome decimal.Decimal, year int, inflation decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	brackets := tc.ScaledBrackets(year, inflation)
	var totalTax decimal.Decimal
	lower := decimal.Zero
	for i, bracket := range brackets {
		// The final bracket is open-ended; its threshold is a sentinel.
		if i == len(brackets)-1 || taxableIncome.LessThanOrEqual(bracket.Threshold) {
			totalTax = totalTax.Add(taxableIncome.Sub(lower).Mul(bracket.Rate))
			break
		}
		totalTax = totalTax.Add(bracket.Threshold.Sub(lower).Mul(bracket.Rate))
		lower = bracket.Threshold
	}
	return totalTax
}

// StateTax is the flat-rate tax on income minus the exemption total. The
// result is negative below the exemption total and deliberately stays so.
func (tc *TaxCalculator) StateTax(income decimal.Decimal) decimal.Decimal {
	return income.Sub(tc.Policy.StateExemptionTotal()).Mul(tc.Policy.StateRate)
}

// SALTCapAt returns the deduction cap for an elapsed year: the base cap,
// inflation-indexed when the policy says so.
func (tc *TaxCalculator) SALTCapAt(year int, inflation decimal.Decimal) decimal.Decimal {
	if !tc.Policy.SALTIndexed() {
		return tc.Policy.SALTCap
	}
	return tc.Policy.SALTCap.Mul(domain.GrowthFactor(inflation, year))
}

// SALTDeduction is the deducted state tax, capped. A negative state tax
// propagates through the min and shrinks the itemized total.
func (tc *TaxCalculator) SALTDeduction(income decimal.Decimal, year int, inflation decimal.Decimal) decimal.Decimal {
	return decimal.Min(tc.SALTCapAt(year, inflation), tc.StateTax(income))
}

// MortgageInterestDeduction prorates the year's interest by
// min(cap, balance)/balance against the end-of-year balance. Guards keep the
// ratio defined: no interest means no deduction, and a balance that reached
// zero during the year (the payoff year, after the schedule snaps the
// residual) finished under the cap, so the full interest stays deductible.
func (tc *TaxCalculator) MortgageInterestDeduction(balance, annualInterest decimal.Decimal) decimal.Decimal {
	if annualInterest.IsZero() {
		return decimal.Zero
	}
	if balance.IsZero() || balance.LessThanOrEqual(tc.Policy.MortgageInterestCap) {
		return annualInterest
	}
	return tc.Policy.MortgageInterestCap.Div(balance).Mul(annualInterest)
}

// AppliedDeduction selects the larger of the standard and itemized
// deductions. Ties pick either; there is no observable difference.
func (tc *TaxCalculator) AppliedDeduction(standard, itemized decimal.Decimal) decimal.Decimal {
	return decimal.Max(standard, itemized)
}
