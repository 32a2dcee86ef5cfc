package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/rgehrsitz/mpgo/internal/output"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes raw YAML bytes and validates the result
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := config.Household.Validate(); err != nil {
		return fmt.Errorf("household validation failed: %w", err)
	}

	if err := ip.validateScenarios(config); err != nil {
		return err
	}

	if config.TaxPolicy != nil {
		if err := ip.validateTaxPolicy(config.TaxPolicy); err != nil {
			return fmt.Errorf("tax_policy validation failed: %w", err)
		}
	}

	return ip.validateOutput(&config.Output)
}

// validateScenarios checks each scenario and the household it resolves to, so
// a bad override is caught at load time rather than mid-run.
func (ip *InputParser) validateScenarios(config *domain.Configuration) error {
	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		seen[scenario.Name] = true

		resolved := scenario.Resolve(config.Household)
		if err := resolved.Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
	}
	return nil
}

// validateTaxPolicy checks a tax_policy block as written, before Normalize
// fills in defaults. Omitted fields are fine; stated ones must be sane.
func (ip *InputParser) validateTaxPolicy(policy *domain.TaxPolicy) error {
	one := decimal.NewFromInt(1)

	prev := decimal.Zero
	for i, bracket := range policy.Brackets {
		if bracket.Threshold.LessThanOrEqual(prev) {
			return fmt.Errorf("federal_brackets[%d]: threshold %s must exceed the previous threshold %s", i, bracket.Threshold, prev)
		}
		if bracket.Rate.LessThan(decimal.Zero) || bracket.Rate.GreaterThan(one) {
			return fmt.Errorf("federal_brackets[%d]: rate must be between 0 and 1, got %s", i, bracket.Rate)
		}
		prev = bracket.Threshold
	}

	if policy.StateRate.LessThan(decimal.Zero) || policy.StateRate.GreaterThan(one) {
		return fmt.Errorf("state_rate must be between 0 and 1, got %s", policy.StateRate)
	}
	if policy.StateExemptionPerFiler.LessThan(decimal.Zero) {
		return fmt.Errorf("state_exemption_per_filer cannot be negative, got %s", policy.StateExemptionPerFiler)
	}
	if policy.StateFilers < 0 {
		return fmt.Errorf("state_filers cannot be negative, got %d", policy.StateFilers)
	}
	if policy.SALTCap.LessThan(decimal.Zero) {
		return fmt.Errorf("salt_cap cannot be negative, got %s", policy.SALTCap)
	}
	if policy.MortgageInterestCap.LessThan(decimal.Zero) {
		return fmt.Errorf("mortgage_interest_cap cannot be negative, got %s", policy.MortgageInterestCap)
	}

	return nil
}

// validateOutput checks the requested format against the formatter registry.
func (ip *InputParser) validateOutput(out *domain.Output) error {
	if out.Format == "" {
		return nil
	}
	if output.GetFormatterByName(out.Format) == nil {
		return fmt.Errorf("unknown output format %q (valid formats: %s)", out.Format, strings.Join(output.AvailableFormatterNames(), ", "))
	}
	return nil
}

// CreateExampleConfiguration returns a ready-to-edit configuration comparing
// a 15-year and a 30-year mortgage on the same household.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	thirtyYears := 30
	return &domain.Configuration{
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
			{Name: "15-year mortgage"},
			{Name: "30-year mortgage", MortgageYears: &thirtyYears},
		},
		Output: domain.Output{Format: "console"},
	}
}
