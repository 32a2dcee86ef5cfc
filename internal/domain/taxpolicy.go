package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one (upper threshold, marginal rate) step of a progressive
// bracket table. The final bracket of a table is open-ended; its threshold is
// kept only as a display sentinel and the bracket walk never compares against
// it.
type TaxBracket struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// TaxPolicy contains the tax model constants: the federal bracket table, the
// flat state tax, and the deduction caps. The zero value is not usable
// directly; Normalize fills unset fields from DefaultTaxPolicy, so a
// configuration file only has to state what it changes.
//
// The model is deliberately simplified. One filing status, one state, no
// credits, no AMT, no phase-outs. Brackets index with the household inflation
// rate rather than published IRS adjustments.
type TaxPolicy struct {
	Brackets []TaxBracket `yaml:"federal_brackets" json:"federal_brackets"`

	StateRate              decimal.Decimal `yaml:"state_rate" json:"state_rate"`
	StateExemptionPerFiler decimal.Decimal `yaml:"state_exemption_per_filer" json:"state_exemption_per_filer"`
	StateFilers            int             `yaml:"state_filers" json:"state_filers"`

	// SALTCap is the itemization cap on deducted state tax. With
	// SALTCapIndexed (the default) the cap grows with inflation from this
	// base; set salt_cap_indexed: false to hold it at the literal amount.
	SALTCap        decimal.Decimal `yaml:"salt_cap" json:"salt_cap"`
	SALTCapIndexed *bool           `yaml:"salt_cap_indexed,omitempty" json:"salt_cap_indexed,omitempty"`

	// MortgageInterestCap limits the deductible share of mortgage interest
	// to the cap/balance ratio. Never inflation-indexed.
	MortgageInterestCap decimal.Decimal `yaml:"mortgage_interest_cap" json:"mortgage_interest_cap"`
}

// DefaultTaxPolicy returns the built-in constants: 2023 married-filing-jointly
// federal brackets, a 4.95% flat state tax with two filer exemptions, the
// $10,000 SALT cap, and the $750,000 mortgage interest cap.
func DefaultTaxPolicy() TaxPolicy {
	indexed := true
	return TaxPolicy{
		Brackets: []TaxBracket{
			{decimal.NewFromInt(22000), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(89450), decimal.NewFromFloat(0.12)},
			{decimal.NewFromInt(190750), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(364200), decimal.NewFromFloat(0.24)},
			{decimal.NewFromInt(462500), decimal.NewFromFloat(0.32)},
			{decimal.NewFromInt(693750), decimal.NewFromFloat(0.35)},
			{decimal.NewFromInt(999999999), decimal.NewFromFloat(0.37)}, // open-ended
		},
		StateRate:              decimal.NewFromFloat(0.0495),
		StateExemptionPerFiler: decimal.NewFromInt(2425),
		StateFilers:            2,
		SALTCap:                decimal.NewFromInt(10000),
		SALTCapIndexed:         &indexed,
		MortgageInterestCap:    decimal.NewFromInt(750000),
	}
}

// Normalize fills unset fields with their defaults and returns the receiver
// for chaining. A field is unset when it is zero (or nil for the pointer
// flag), which keeps partial tax_policy blocks in configuration files valid.
func (tp *TaxPolicy) Normalize() *TaxPolicy {
	def := DefaultTaxPolicy()
	if len(tp.Brackets) == 0 {
		tp.Brackets = def.Brackets
	}
	if tp.StateRate.IsZero() {
		tp.StateRate = def.StateRate
	}
	if tp.StateExemptionPerFiler.IsZero() {
		tp.StateExemptionPerFiler = def.StateExemptionPerFiler
	}
	if tp.StateFilers == 0 {
		tp.StateFilers = def.StateFilers
	}
	if tp.SALTCap.IsZero() {
		tp.SALTCap = def.SALTCap
	}
	if tp.SALTCapIndexed == nil {
		tp.SALTCapIndexed = def.SALTCapIndexed
	}
	if tp.MortgageInterestCap.IsZero() {
		tp.MortgageInterestCap = def.MortgageInterestCap
	}
	return tp
}

// SALTIndexed reports whether the SALT cap grows with inflation.
func (tp *TaxPolicy) SALTIndexed() bool {
	return tp.SALTCapIndexed == nil || *tp.SALTCapIndexed
}

// StateExemptionTotal is the per-filer exemption times the filer count.
func (tp *TaxPolicy) StateExemptionTotal() decimal.Decimal {
	return tp.StateExemptionPerFiler.Mul(decimal.NewFromInt(int64(tp.StateFilers)))
}

// TopMarginalRate returns the rate of the final (open-ended) bracket.
func (tp *TaxPolicy) TopMarginalRate() decimal.Decimal {
	if len(tp.Brackets) == 0 {
		return decimal.Zero
	}
	return tp.Brackets[len(tp.Brackets)-1].Rate
}
