package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Household contains the scenario inputs: the home purchase, the mortgage
// terms, and the income/expense assumptions the simulation grows year over
// year. A Household is immutable for the duration of one run, but callers may
// adjust fields between runs (a sweep varying the mortgage term, for example)
// and re-run the same simulation instance.
type Household struct {
	HomePrice   decimal.Decimal `yaml:"home_price" json:"home_price"`
	DownPayment decimal.Decimal `yaml:"down_payment" json:"down_payment"`

	SimulationYears int `yaml:"simulation_years" json:"simulation_years"`
	MortgageYears   int `yaml:"mortgage_years" json:"mortgage_years"`

	// MortgageRate is the annual nominal rate; the schedule compounds at
	// MortgageRate/12 per month.
	MortgageRate decimal.Decimal `yaml:"mortgage_rate" json:"mortgage_rate"`

	AnnualIncome     decimal.Decimal `yaml:"annual_income" json:"annual_income"`
	IncomeGrowthRate decimal.Decimal `yaml:"income_growth_rate" json:"income_growth_rate"`

	LivingExpenses    decimal.Decimal `yaml:"living_expenses" json:"living_expenses"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	InflationRate     decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`

	InvestmentReturnRate decimal.Decimal `yaml:"investment_return_rate" json:"investment_return_rate"`

	// CharitableRate is the fraction of gross income donated each year and
	// itemized as a charitable deduction.
	CharitableRate decimal.Decimal `yaml:"charitable_rate" json:"charitable_rate"`
}

// LoanAmount returns the financed principal: home price minus down payment.
func (h *Household) LoanAmount() decimal.Decimal {
	return h.HomePrice.Sub(h.DownPayment)
}

// IncomeAt returns gross income for elapsed year y (y = 0 is the first
// simulated year, at the initial income).
func (h *Household) IncomeAt(year int) decimal.Decimal {
	return h.AnnualIncome.Mul(GrowthFactor(h.IncomeGrowthRate, year))
}

// LivingExpensesAt returns living expenses for elapsed year y, grown at the
// inflation rate.
func (h *Household) LivingExpensesAt(year int) decimal.Decimal {
	return h.LivingExpenses.Mul(GrowthFactor(h.InflationRate, year))
}

// StandardDeductionAt returns the standard deduction for elapsed year y,
// grown at the inflation rate.
func (h *Household) StandardDeductionAt(year int) decimal.Decimal {
	return h.StandardDeduction.Mul(GrowthFactor(h.InflationRate, year))
}

// GrowthFactor is (1+rate)^years, the geometric growth shared by incomes,
// expenses, deductions, and bracket indexing.
func GrowthFactor(rate decimal.Decimal, years int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(years)))
}

// Validate rejects households the simulation cannot run. Failures here are
// configuration errors and surface before any stepping begins.
func (h *Household) Validate() error {
	if h.HomePrice.IsNegative() {
		return fmt.Errorf("home_price must not be negative, got %s", h.HomePrice)
	}
	if h.DownPayment.IsNegative() {
		return fmt.Errorf("down_payment must not be negative, got %s", h.DownPayment)
	}
	if h.DownPayment.GreaterThan(h.HomePrice) {
		return fmt.Errorf("down_payment %s exceeds home_price %s", h.DownPayment, h.HomePrice)
	}
	if h.SimulationYears <= 0 {
		return fmt.Errorf("simulation_years must be positive, got %d", h.SimulationYears)
	}
	if h.MortgageYears < 0 {
		return fmt.Errorf("mortgage_years must not be negative, got %d", h.MortgageYears)
	}
	if h.MortgageYears == 0 && h.LoanAmount().GreaterThan(decimal.Zero) {
		return fmt.Errorf("mortgage_years must be positive when financing %s", h.LoanAmount())
	}
	for _, rate := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"mortgage_rate", h.MortgageRate},
		{"income_growth_rate", h.IncomeGrowthRate},
		{"inflation_rate", h.InflationRate},
		{"investment_return_rate", h.InvestmentReturnRate},
	} {
		if rate.value.IsNegative() {
			return fmt.Errorf("%s must not be negative, got %s", rate.name, rate.value)
		}
	}
	for _, amount := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"annual_income", h.AnnualIncome},
		{"living_expenses", h.LivingExpenses},
		{"standard_deduction", h.StandardDeduction},
	} {
		if amount.value.IsNegative() {
			return fmt.Errorf("%s must not be negative, got %s", amount.name, amount.value)
		}
	}
	if h.CharitableRate.IsNegative() || h.CharitableRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("charitable_rate must be between 0 and 1, got %s", h.CharitableRate)
	}
	return nil
}
