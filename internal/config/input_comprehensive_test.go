package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	config, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	// Create a temporary file with invalid YAML
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")

	err := os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644)
	assert.NoError(t, err)

	parser := NewInputParser()
	config, err := parser.LoadFromFile(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "failed to parse YAML", "Should have specific error message")
}

func TestInputParser_LoadFromFile_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	validFile := filepath.Join(tmpDir, "valid.yaml")

	validYAML := `
household:
  home_price: 1200000
  down_payment: 400000
  simulation_years: 30
  mortgage_years: 15
  mortgage_rate: 0.06
  annual_income: 500000
  income_growth_rate: 0.02
  living_expenses: 100000
  standard_deduction: 25900
  inflation_rate: 0.02
  investment_return_rate: 0.03
  charitable_rate: 0.05

scenarios:
  - name: "15-year mortgage"
  - name: "30-year mortgage"
    mortgage_years: 30

tax_policy:
  salt_cap: 10000
  salt_cap_indexed: false

output:
  format: "csv"
`

	err := os.WriteFile(validFile, []byte(validYAML), 0644)
	assert.NoError(t, err)

	parser := NewInputParser()
	config, err := parser.LoadFromFile(validFile)

	require.NoError(t, err, "Should not error for valid YAML")
	require.NotNil(t, config, "Should return config")
	assert.True(t, config.Household.HomePrice.Equal(decimal.NewFromInt(1200000)), "Should parse home price")
	assert.True(t, config.Household.MortgageRate.Equal(decimal.NewFromFloat(0.06)), "Should parse mortgage rate")
	assert.Equal(t, 15, config.Household.MortgageYears, "Should parse mortgage years")
	assert.Len(t, config.Scenarios, 2, "Should parse scenarios")
	assert.Equal(t, "15-year mortgage", config.Scenarios[0].Name, "Should parse scenario name")
	require.NotNil(t, config.Scenarios[1].MortgageYears, "Should parse scenario override")
	assert.Equal(t, 30, *config.Scenarios[1].MortgageYears, "Should parse override value")
	require.NotNil(t, config.TaxPolicy, "Should parse tax policy block")
	assert.False(t, config.TaxPolicy.SALTIndexed(), "Should parse salt_cap_indexed flag")
	assert.Equal(t, "csv", config.Output.Format, "Should parse output format")
}

func TestInputParser_Parse_ScenarioOverridesResolve(t *testing.T) {
	yamlData := `
household:
  home_price: 500000
  down_payment: 100000
  simulation_years: 10
  mortgage_years: 30
  mortgage_rate: 0.05
  annual_income: 150000
  living_expenses: 60000
  standard_deduction: 25900

scenarios:
  - name: "base"
  - name: "aggressive"
    mortgage_years: 10
    down_payment: 250000
`

	parser := NewInputParser()
	config, err := parser.Parse([]byte(yamlData))
	require.NoError(t, err)

	resolved := config.Scenarios[1].Resolve(config.Household)
	assert.Equal(t, 10, resolved.MortgageYears, "Override should replace the base term")
	assert.True(t, resolved.DownPayment.Equal(decimal.NewFromInt(250000)), "Override should replace the down payment")
	assert.True(t, resolved.HomePrice.Equal(decimal.NewFromInt(500000)), "Untouched fields should inherit the base")
}

func TestInputParser_Parse_DefaultsWhenBlocksOmitted(t *testing.T) {
	yamlData := `
household:
  home_price: 500000
  down_payment: 100000
  simulation_years: 10
  mortgage_years: 30
  annual_income: 150000
  living_expenses: 60000
  standard_deduction: 25900
`

	parser := NewInputParser()
	config, err := parser.Parse([]byte(yamlData))
	require.NoError(t, err)

	scenarios := config.ResolvedScenarios()
	require.Len(t, scenarios, 1, "Missing scenarios block should yield one base scenario")
	assert.Equal(t, "base", scenarios[0].Name)

	policy := config.EffectiveTaxPolicy()
	assert.True(t, policy.SALTCap.Equal(decimal.NewFromInt(10000)), "Missing tax_policy block should yield defaults")
	assert.Len(t, policy.Brackets, 7, "Default bracket table should be filled in")
}

func TestInputParser_ValidateConfiguration_NegativeHomePrice(t *testing.T) {
	parser := NewInputParser()

	config := &domain.Configuration{
		Household: domain.Household{
			HomePrice:       decimal.NewFromInt(-1),
			SimulationYears: 10,
		},
	}

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err, "Should error for negative home price")
	assert.Contains(t, err.Error(), "home_price", "Should name the offending field")
}

func TestInputParser_ValidateConfiguration_DownPaymentExceedsPrice(t *testing.T) {
	parser := NewInputParser()

	config := &domain.Configuration{
		Household: domain.Household{
			HomePrice:       decimal.NewFromInt(300000),
			DownPayment:     decimal.NewFromInt(400000),
			SimulationYears: 10,
			MortgageYears:   30,
		},
	}

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err, "Should error when the down payment exceeds the price")
	assert.Contains(t, err.Error(), "down_payment", "Should name the offending field")
}

func TestInputParser_ValidateConfiguration_ZeroSimulationYears(t *testing.T) {
	parser := NewInputParser()

	config := &domain.Configuration{
		Household: domain.Household{
			HomePrice:   decimal.NewFromInt(300000),
			DownPayment: decimal.NewFromInt(300000),
		},
	}

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err, "Should error for a zero-year horizon")
	assert.Contains(t, err.Error(), "simulation_years must be positive", "Should have specific error message")
}

func TestInputParser_ValidateConfiguration_EmptyScenarioName(t *testing.T) {
	parser := NewInputParser()

	config := &domain.Configuration{
		Household: validHousehold(),
		Scenarios: []domain.Scenario{{Name: ""}},
	}

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err, "Should error for empty scenario name")
	assert.Contains(t, err.Error(), "name is required", "Should have specific error message")
}

func TestInputParser_ValidateConfiguration_DuplicateScenarioNames(t *testing.T) {
	parser := NewInputParser()

	config := &domain.Configuration{
		Household: validHousehold(),
		Scenarios: []domain.Scenario{{Name: "twice"}, {Name: "twice"}},
	}

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err, "Should error for duplicate scenario names")
	assert.Contains(t, err.Error(), "duplicate scenario name", "Should have specific error message")
}

func TestInputParser_ValidateConfiguration_BadScenarioOverride(t *testing.T) {
	parser := NewInputParser()

	config := &domain.Configuration{
		Household: validHousehold(),
		Scenarios: []domain.Scenario{
			{Name: "no term", MortgageYears: intPtr(0)},
		},
	}

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err, "Should error when an override breaks the household")
	assert.Contains(t, err.Error(), "scenario 0 (no term)", "Should name the offending scenario")
	assert.Contains(t, err.Error(), "mortgage_years", "Should carry the underlying field error")
}

func TestInputParser_ValidateTaxPolicy_BracketsOutOfOrder(t *testing.T) {
	parser := NewInputParser()

	policy := &domain.TaxPolicy{
		Brackets: []domain.TaxBracket{
			{Threshold: decimal.NewFromInt(50000), Rate: decimal.NewFromFloat(0.10)},
			{Threshold: decimal.NewFromInt(40000), Rate: decimal.NewFromFloat(0.20)},
		},
	}

	err := parser.validateTaxPolicy(policy)
	assert.Error(t, err, "Should error for unsorted thresholds")
	assert.Contains(t, err.Error(), "must exceed the previous threshold", "Should have specific error message")
}

func TestInputParser_ValidateTaxPolicy_RateOutOfRange(t *testing.T) {
	parser := NewInputParser()

	policy := &domain.TaxPolicy{
		Brackets: []domain.TaxBracket{
			{Threshold: decimal.NewFromInt(50000), Rate: decimal.NewFromFloat(1.10)},
		},
	}

	err := parser.validateTaxPolicy(policy)
	assert.Error(t, err, "Should error for a rate above 1")
	assert.Contains(t, err.Error(), "rate must be between 0 and 1", "Should have specific error message")
}

func TestInputParser_ValidateTaxPolicy_NegativeStateRate(t *testing.T) {
	parser := NewInputParser()

	policy := &domain.TaxPolicy{
		StateRate: decimal.NewFromFloat(-0.01),
	}

	err := parser.validateTaxPolicy(policy)
	assert.Error(t, err, "Should error for negative state rate")
	assert.Contains(t, err.Error(), "state_rate must be between 0 and 1", "Should have specific error message")
}

func TestInputParser_ValidateTaxPolicy_NegativeSALTCap(t *testing.T) {
	parser := NewInputParser()

	policy := &domain.TaxPolicy{
		SALTCap: decimal.NewFromInt(-10000),
	}

	err := parser.validateTaxPolicy(policy)
	assert.Error(t, err, "Should error for negative SALT cap")
	assert.Contains(t, err.Error(), "salt_cap cannot be negative", "Should have specific error message")
}

func TestInputParser_ValidateConfiguration_UnknownOutputFormat(t *testing.T) {
	parser := NewInputParser()

	config := &domain.Configuration{
		Household: validHousehold(),
		Output:    domain.Output{Format: "spreadsheet"},
	}

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err, "Should error for unregistered format")
	assert.Contains(t, err.Error(), "unknown output format", "Should have specific error message")
}

func TestInputParser_ValidateConfiguration_FormatAliasAccepted(t *testing.T) {
	parser := NewInputParser()

	config := &domain.Configuration{
		Household: validHousehold(),
		Output:    domain.Output{Format: "csv"},
	}

	err := parser.ValidateConfiguration(config)
	assert.NoError(t, err, "Registered format names should pass validation")
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NotNil(t, config)
	assert.NoError(t, parser.ValidateConfiguration(config), "Example configuration should validate cleanly")
	require.Len(t, config.Scenarios, 2, "Example should compare two mortgage terms")

	base := config.Scenarios[0].Resolve(config.Household)
	stretch := config.Scenarios[1].Resolve(config.Household)
	assert.Equal(t, 15, base.MortgageYears)
	assert.Equal(t, 30, stretch.MortgageYears)
	assert.True(t, base.LoanAmount().Equal(decimal.NewFromInt(800000)), "Example should finance 800,000")
}

func validHousehold() domain.Household {
	return domain.Household{
		HomePrice:         decimal.NewFromInt(500000),
		DownPayment:       decimal.NewFromInt(100000),
		SimulationYears:   10,
		MortgageYears:     30,
		MortgageRate:      decimal.NewFromFloat(0.05),
		AnnualIncome:      decimal.NewFromInt(150000),
		LivingExpenses:    decimal.NewFromInt(60000),
		StandardDeduction: decimal.NewFromInt(25900),
	}
}

// Helper function for creating int pointers
func intPtr(i int) *int {
	return &i
}
