package config

import (
	"testing"

	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/shopspring/decimal"
)

func TestConfigurationValidation(t *testing.T) {
	validConfig := &domain.Configuration{
		Household: domain.Household{
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
		},
		Scenarios: []domain.Scenario{
			{
				Name: "Base Case",
			},
			{
				Name:          "Shorter Term",
				MortgageYears: &[]int{10}[0],
			},
			{
				Name:         "Bigger Down Payment",
				DownPayment:  &[]decimal.Decimal{decimal.NewFromInt(600000)}[0],
				MortgageRate: &[]decimal.Decimal{decimal.NewFromFloat(0.055)}[0],
			},
		},
	}

	parser := NewInputParser()
	err := parser.ValidateConfiguration(validConfig)
	if err != nil {
		t.Errorf("Expected valid configuration but got error: %s", err.Error())
	}
}
