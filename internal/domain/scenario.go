package domain

import (
	"github.com/shopspring/decimal"
)

// Scenario names a variation of the base household. Nil fields inherit the
// base value, so a sweep entry only states what it changes.
type Scenario struct {
	Name string `yaml:"name" json:"name"`

	HomePrice            *decimal.Decimal `yaml:"home_price,omitempty" json:"home_price,omitempty"`
	DownPayment          *decimal.Decimal `yaml:"down_payment,omitempty" json:"down_payment,omitempty"`
	SimulationYears      *int             `yaml:"simulation_years,omitempty" json:"simulation_years,omitempty"`
	MortgageYears        *int             `yaml:"mortgage_years,omitempty" json:"mortgage_years,omitempty"`
	MortgageRate         *decimal.Decimal `yaml:"mortgage_rate,omitempty" json:"mortgage_rate,omitempty"`
	AnnualIncome         *decimal.Decimal `yaml:"annual_income,omitempty" json:"annual_income,omitempty"`
	IncomeGrowthRate     *decimal.Decimal `yaml:"income_growth_rate,omitempty" json:"income_growth_rate,omitempty"`
	LivingExpenses       *decimal.Decimal `yaml:"living_expenses,omitempty" json:"living_expenses,omitempty"`
	StandardDeduction    *decimal.Decimal `yaml:"standard_deduction,omitempty" json:"standard_deduction,omitempty"`
	InflationRate        *decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`
	InvestmentReturnRate *decimal.Decimal `yaml:"investment_return_rate,omitempty" json:"investment_return_rate,omitempty"`
	CharitableRate       *decimal.Decimal `yaml:"charitable_rate,omitempty" json:"charitable_rate,omitempty"`
}

// Resolve applies the scenario's overrides to a copy of the base household.
func (s *Scenario) Resolve(base Household) Household {
	resolved := base
	if s.HomePrice != nil {
		resolved.HomePrice = *s.HomePrice
	}
	if s.DownPayment != nil {
		resolved.DownPayment = *s.DownPayment
	}
	if s.SimulationYears != nil {
		resolved.SimulationYears = *s.SimulationYears
	}
	if s.MortgageYears != nil {
		resolved.MortgageYears = *s.MortgageYears
	}
	if s.MortgageRate != nil {
		resolved.MortgageRate = *s.MortgageRate
	}
	if s.AnnualIncome != nil {
		resolved.AnnualIncome = *s.AnnualIncome
	}
	if s.IncomeGrowthRate != nil {
		resolved.IncomeGrowthRate = *s.IncomeGrowthRate
	}
	if s.LivingExpenses != nil {
		resolved.LivingExpenses = *s.LivingExpenses
	}
	if s.StandardDeduction != nil {
		resolved.StandardDeduction = *s.StandardDeduction
	}
	if s.InflationRate != nil {
		resolved.InflationRate = *s.InflationRate
	}
	if s.InvestmentReturnRate != nil {
		resolved.InvestmentReturnRate = *s.InvestmentReturnRate
	}
	if s.CharitableRate != nil {
		resolved.CharitableRate = *s.CharitableRate
	}
	return resolved
}
