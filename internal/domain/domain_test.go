package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseHousehold() Household {
	return Household{
		HomePrice:            decimal.NewFromInt(1200000),
		DownPayment:          decimal.NewFromInt(400000),
		SimulationYears:      30,
		MortgageYears:        15,
		MortgageRate:         decimal.NewFromFloat(0.06),
		AnnualIncome:         decimal.NewFromInt(500000),
		IncomeGrowthRate:     decimal.NewFromFloat(0.02),
		LivingExpenses:       decimal.NewFromInt(100000),
		StandardDeduction:    decimal.NewFromInt(25900),
		InflationRate:        decimal.NewFromFloat(0.02),
		InvestmentReturnRate: decimal.NewFromFloat(0.03),
		CharitableRate:       decimal.NewFromFloat(0.05),
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func intPtr(i int) *int {
	return &i
}

func TestHousehold_LoanAmount(t *testing.T) {
	h := baseHousehold()
	assert.True(t, h.LoanAmount().Equal(decimal.NewFromInt(800000)), "loan %s", h.LoanAmount())
}

func TestGrowthFactor(t *testing.T) {
	assert.True(t, GrowthFactor(decimal.Zero, 7).Equal(decimal.NewFromInt(1)), "zero rate never grows")
	assert.True(t, GrowthFactor(decimal.NewFromFloat(0.10), 0).Equal(decimal.NewFromInt(1)), "year zero is the initial value")
	// (1.10)^2 = 1.21
	assert.True(t, GrowthFactor(decimal.NewFromFloat(0.10), 2).Equal(decimal.NewFromFloat(1.21)))
}

func TestHousehold_GrowthHelpers(t *testing.T) {
	h := Household{
		AnnualIncome:      decimal.NewFromInt(100000),
		IncomeGrowthRate:  decimal.NewFromFloat(0.10),
		LivingExpenses:    decimal.NewFromInt(50000),
		StandardDeduction: decimal.NewFromInt(10000),
		InflationRate:     decimal.NewFromFloat(0.02),
	}

	assert.True(t, h.IncomeAt(0).Equal(decimal.NewFromInt(100000)))
	assert.True(t, h.IncomeAt(1).Equal(decimal.NewFromInt(110000)), "income grows at its own rate")

	// Expenses and the standard deduction grow with inflation: 50000*1.02 and
	// 10000*1.02.
	assert.True(t, h.LivingExpensesAt(1).Equal(decimal.NewFromInt(51000)))
	assert.True(t, h.StandardDeductionAt(1).Equal(decimal.NewFromInt(10200)))
}

func TestHousehold_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Household)
		wantErr string
	}{
		{"valid", func(h *Household) {}, ""},
		{"down payment exceeds price", func(h *Household) {
			h.DownPayment = decimal.NewFromInt(1300000)
		}, "down_payment"},
		{"zero horizon", func(h *Household) {
			h.SimulationYears = 0
		}, "simulation_years"},
		{"zero term with a loan", func(h *Household) {
			h.MortgageYears = 0
		}, "mortgage_years"},
		{"negative mortgage rate", func(h *Household) {
			h.MortgageRate = decimal.NewFromFloat(-0.01)
		}, "mortgage_rate"},
		{"negative income", func(h *Household) {
			h.AnnualIncome = decimal.NewFromInt(-1)
		}, "annual_income"},
		{"charitable rate above one", func(h *Household) {
			h.CharitableRate = decimal.NewFromFloat(1.5)
		}, "charitable_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := baseHousehold()
			tt.mutate(&h)
			err := h.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr, "error should name the field")
		})
	}
}

func TestHousehold_Validate_ZeroTermWithoutLoan(t *testing.T) {
	// An all-cash purchase needs no term.
	h := baseHousehold()
	h.DownPayment = h.HomePrice
	h.MortgageYears = 0
	assert.NoError(t, h.Validate())
}

func TestScenario_Resolve(t *testing.T) {
	base := baseHousehold()
	sc := Scenario{
		Name:           "30-year lean",
		MortgageYears:  intPtr(30),
		LivingExpenses: decimalPtr(decimal.NewFromInt(80000)),
	}

	resolved := sc.Resolve(base)

	assert.Equal(t, 30, resolved.MortgageYears, "override applies")
	assert.True(t, resolved.LivingExpenses.Equal(decimal.NewFromInt(80000)), "override applies")
	assert.True(t, resolved.HomePrice.Equal(base.HomePrice), "unset fields inherit")
	assert.Equal(t, base.SimulationYears, resolved.SimulationYears, "unset fields inherit")

	// The base household is untouched.
	assert.Equal(t, 15, base.MortgageYears)
	assert.True(t, base.LivingExpenses.Equal(decimal.NewFromInt(100000)))
}

func TestScenario_Resolve_EmptyInheritsEverything(t *testing.T) {
	base := baseHousehold()
	resolved := (&Scenario{Name: "base"}).Resolve(base)
	assert.Equal(t, base, resolved)
}

func TestTaxPolicy_Normalize(t *testing.T) {
	policy := (&TaxPolicy{StateRate: decimal.NewFromFloat(0.03)}).Normalize()
	def := DefaultTaxPolicy()

	assert.True(t, policy.StateRate.Equal(decimal.NewFromFloat(0.03)), "stated fields survive")
	assert.Len(t, policy.Brackets, len(def.Brackets), "unset brackets take the default table")
	assert.True(t, policy.SALTCap.Equal(def.SALTCap))
	assert.True(t, policy.MortgageInterestCap.Equal(def.MortgageInterestCap))
	assert.True(t, policy.SALTIndexed(), "indexing defaults on")
}

func TestTaxPolicy_SALTIndexed(t *testing.T) {
	assert.True(t, (&TaxPolicy{}).SALTIndexed(), "nil flag means indexed")

	off := false
	assert.False(t, (&TaxPolicy{SALTCapIndexed: &off}).SALTIndexed())
}

func TestTaxPolicy_StateExemptionTotal(t *testing.T) {
	policy := DefaultTaxPolicy()
	// 2425 per filer, two filers.
	assert.True(t, policy.StateExemptionTotal().Equal(decimal.NewFromInt(4850)))
}

func TestTaxPolicy_TopMarginalRate(t *testing.T) {
	policy := DefaultTaxPolicy()
	assert.True(t, policy.TopMarginalRate().Equal(decimal.NewFromFloat(0.37)))
	empty := TaxPolicy{}
	assert.True(t, empty.TopMarginalRate().IsZero())
}

func TestConfiguration_ResolvedScenarios(t *testing.T) {
	cfg := &Configuration{Household: baseHousehold()}

	scenarios := cfg.ResolvedScenarios()
	require.Len(t, scenarios, 1, "no scenario block means one implicit scenario")
	assert.Equal(t, "base", scenarios[0].Name)

	cfg.Scenarios = []Scenario{{Name: "a"}, {Name: "b"}}
	scenarios = cfg.ResolvedScenarios()
	require.Len(t, scenarios, 2)
	assert.Equal(t, "a", scenarios[0].Name)
}

func TestConfiguration_EffectiveTaxPolicy(t *testing.T) {
	cfg := &Configuration{Household: baseHousehold()}

	policy := cfg.EffectiveTaxPolicy()
	assert.True(t, policy.StateRate.Equal(decimal.NewFromFloat(0.0495)), "nil block takes the full default")

	cfg.TaxPolicy = &TaxPolicy{StateRate: decimal.NewFromFloat(0.07)}
	policy = cfg.EffectiveTaxPolicy()
	assert.True(t, policy.StateRate.Equal(decimal.NewFromFloat(0.07)), "stated rate survives")
	assert.NotEmpty(t, policy.Brackets, "unset fields are filled in")
	assert.Empty(t, cfg.TaxPolicy.Brackets, "the configured block is not mutated")
}

func TestYearRecord_TotalTax(t *testing.T) {
	yr := YearRecord{
		StateTax:   decimal.NewFromInt(2000),
		FederalTax: decimal.NewFromInt(8000),
	}
	assert.True(t, yr.TotalTax().Equal(decimal.NewFromInt(10000)))
}

func TestYearRecord_Itemized(t *testing.T) {
	yr := YearRecord{
		StandardDeduction: decimal.NewFromInt(25900),
		ItemizedDeduction: decimal.NewFromInt(30000),
	}
	assert.True(t, yr.Itemized())

	yr.ItemizedDeduction = decimal.NewFromInt(20000)
	assert.False(t, yr.Itemized())
}

func TestScenarioSummary_FinalYear(t *testing.T) {
	var empty ScenarioSummary
	assert.Nil(t, empty.FinalYear())

	summary := ScenarioSummary{Years: []YearRecord{{Year: 1}, {Year: 2}}}
	final := summary.FinalYear()
	require.NotNil(t, final)
	assert.Equal(t, 2, final.Year)
}
