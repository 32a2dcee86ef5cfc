package compare

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rgehrsitz/mpgo/internal/calculation"
	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweepTestConfiguration() *domain.Configuration {
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
			{Name: "30-year mortgage", MortgageYears: intPtr(30)},
			{Name: "bigger down payment", DownPayment: decimalPtr(decimal.NewFromInt(600000))},
		},
	}
}

func TestNewSweepEngine(t *testing.T) {
	engine := NewSweepEngine(calculation.NewCalculationEngine())

	assert.NotNil(t, engine.CalcEngine, "Should hold the calculation engine")
	assert.NotNil(t, engine.Metrics, "Should initialize the metrics calculator")
}

func TestSweepEngine_Sweep(t *testing.T) {
	engine := NewSweepEngine(calculation.NewCalculationEngine())
	config := sweepTestConfiguration()

	sweepSet, err := engine.Sweep(context.Background(), config, SweepOptions{})
	require.NoError(t, err)

	assert.Equal(t, "15-year mortgage", sweepSet.BaseScenarioName,
		"The first configured scenario is the default base")
	require.NotNil(t, sweepSet.BaseResult)
	assert.Equal(t, "15-year mortgage", sweepSet.BaseResult.ScenarioName)
	assert.Equal(t, 15, sweepSet.BaseResult.PayoffYear)
	assert.True(t, sweepSet.BaseResult.BalanceDiffFromBase.IsZero(),
		"The base carries no deltas")

	require.Len(t, sweepSet.AlternativeResults, 2)
	assert.Equal(t, "30-year mortgage", sweepSet.AlternativeResults[0].ScenarioName,
		"Alternatives keep configuration order")
	assert.Equal(t, "bigger down payment", sweepSet.AlternativeResults[1].ScenarioName)

	longer := sweepSet.AlternativeResults[0]
	assert.Equal(t, 30, longer.PayoffYear)
	assert.Equal(t, 15, longer.PayoffYearDiff)
	assert.True(t, longer.MonthlyPayment.LessThan(sweepSet.BaseResult.MonthlyPayment),
		"The longer term should cost less per month")
	assert.True(t, longer.InterestDiffFromBase.IsPositive(),
		"The longer term should pay more total interest")

	expectedDiff := longer.FinalInvestmentBalance.Sub(sweepSet.BaseResult.FinalInvestmentBalance)
	assert.True(t, longer.BalanceDiffFromBase.Equal(expectedDiff),
		"The balance delta should match the final balances")

	require.NotNil(t, longer.Summary, "Each result carries its full summary")
	assert.Len(t, longer.Summary.Years, 30)
}

func TestSweepEngine_Sweep_BaseScenarioByName(t *testing.T) {
	engine := NewSweepEngine(calculation.NewCalculationEngine())
	config := sweepTestConfiguration()

	sweepSet, err := engine.Sweep(context.Background(), config, SweepOptions{
		BaseScenarioName: "30-year mortgage",
	})
	require.NoError(t, err)

	assert.Equal(t, "30-year mortgage", sweepSet.BaseResult.ScenarioName)
	require.Len(t, sweepSet.AlternativeResults, 2)
	assert.Equal(t, "15-year mortgage", sweepSet.AlternativeResults[0].ScenarioName,
		"Remaining scenarios keep configuration order")
	assert.Equal(t, "bigger down payment", sweepSet.AlternativeResults[1].ScenarioName)
}

func TestSweepEngine_Sweep_BaseNotFound(t *testing.T) {
	engine := NewSweepEngine(calculation.NewCalculationEngine())

	_, err := engine.Sweep(context.Background(), sweepTestConfiguration(), SweepOptions{
		BaseScenarioName: "missing",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `base scenario "missing" not found`)
}

func TestSweepEngine_Sweep_SingleScenario(t *testing.T) {
	engine := NewSweepEngine(calculation.NewCalculationEngine())
	config := sweepTestConfiguration()
	config.Scenarios = nil

	sweepSet, err := engine.Sweep(context.Background(), config, SweepOptions{})
	require.NoError(t, err)

	assert.Equal(t, "base", sweepSet.BaseScenarioName, "An implicit base scenario runs")
	assert.Empty(t, sweepSet.AlternativeResults)
	assert.Empty(t, sweepSet.Findings)
}

func TestSweepEngine_Sweep_ParallelMatchesSequential(t *testing.T) {
	engine := NewSweepEngine(calculation.NewCalculationEngine())
	config := sweepTestConfiguration()

	sequential, err := engine.Sweep(context.Background(), config, SweepOptions{Parallelism: 1})
	require.NoError(t, err)

	parallel, err := engine.Sweep(context.Background(), config, SweepOptions{Parallelism: 4})
	require.NoError(t, err)

	sequentialJSON, err := json.Marshal(sequential)
	require.NoError(t, err)
	parallelJSON, err := json.Marshal(parallel)
	require.NoError(t, err)

	assert.Equal(t, string(sequentialJSON), string(parallelJSON),
		"Parallel sweeps must reproduce the sequential results exactly")
}

func TestSweepEngine_Sweep_ParallelismAboveScenarioCount(t *testing.T) {
	engine := NewSweepEngine(calculation.NewCalculationEngine())
	config := sweepTestConfiguration()

	sweepSet, err := engine.Sweep(context.Background(), config, SweepOptions{Parallelism: 64})
	require.NoError(t, err)
	require.Len(t, sweepSet.AlternativeResults, 2)
}

func TestSweepEngine_Sweep_InvalidScenario(t *testing.T) {
	engine := NewSweepEngine(calculation.NewCalculationEngine())
	config := sweepTestConfiguration()
	config.Scenarios = append(config.Scenarios, domain.Scenario{
		Name:          "no term",
		MortgageYears: intPtr(0),
	})

	_, err := engine.Sweep(context.Background(), config, SweepOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "no term"`)

	_, err = engine.Sweep(context.Background(), config, SweepOptions{Parallelism: 4})
	require.Error(t, err, "The parallel path should surface the same failure")
	assert.Contains(t, err.Error(), `scenario "no term"`)
}

func TestSweepEngine_Sweep_CancelledContext(t *testing.T) {
	engine := NewSweepEngine(calculation.NewCalculationEngine())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Sweep(ctx, sweepTestConfiguration(), SweepOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func intPtr(i int) *int {
	return &i
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
