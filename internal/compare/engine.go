package compare

import (
	"context"
	"fmt"

	"github.com/alitto/pond"

	"github.com/rgehrsitz/mpgo/internal/calculation"
	"github.com/rgehrsitz/mpgo/internal/domain"
)

// SweepEngine runs every configured scenario and compares the results
// against a designated base scenario.
type SweepEngine struct {
	CalcEngine *calculation.CalculationEngine
	Metrics    *MetricsCalculator
}

// NewSweepEngine creates a new sweep engine.
func NewSweepEngine(calcEngine *calculation.CalculationEngine) *SweepEngine {
	return &SweepEngine{
		CalcEngine: calcEngine,
		Metrics:    NewMetricsCalculator(),
	}
}

// SweepOptions configures sweep behavior.
type SweepOptions struct {
	// BaseScenarioName selects the comparison baseline. Empty means the
	// first configured scenario.
	BaseScenarioName string

	// Parallelism caps concurrent scenario runs. Values below 2 run the
	// sweep sequentially.
	Parallelism int
}

// Sweep runs all scenarios in the configuration and assembles the comparison
// against the base scenario. Alternatives keep configuration order no matter
// which workers finish first, so sequential and parallel sweeps produce
// identical sets.
func (se *SweepEngine) Sweep(ctx context.Context, config *domain.Configuration, options SweepOptions) (*SweepSet, error) {
	scenarios := config.ResolvedScenarios()

	baseName := options.BaseScenarioName
	if baseName == "" {
		baseName = scenarios[0].Name
	}
	baseIndex := -1
	for i := range scenarios {
		if scenarios[i].Name == baseName {
			baseIndex = i
			break
		}
	}
	if baseIndex < 0 {
		return nil, fmt.Errorf("base scenario %q not found in configuration", baseName)
	}

	summaries, err := se.runAll(ctx, config, scenarios, options.Parallelism)
	if err != nil {
		return nil, err
	}

	baseResult := se.Metrics.CalculateMetrics(summaries[baseIndex])

	alternatives := make([]SweepResult, 0, len(summaries)-1)
	for i, summary := range summaries {
		if i == baseIndex {
			continue
		}
		result := se.Metrics.CalculateMetrics(summary)
		result = se.Metrics.CalculateComparison(result, baseResult)
		alternatives = append(alternatives, result)
	}

	sweepSet := &SweepSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	sweepSet.Findings = GenerateFindings(sweepSet)

	return sweepSet, nil
}

// runAll executes every scenario, sequentially or on a bounded worker pool.
// Each run builds its own Simulation, so parallel workers share no mutable
// state and results land in their configuration-order slots.
func (se *SweepEngine) runAll(ctx context.Context, config *domain.Configuration, scenarios []domain.Scenario, parallelism int) ([]*domain.ScenarioSummary, error) {
	summaries := make([]*domain.ScenarioSummary, len(scenarios))

	if parallelism < 2 || len(scenarios) < 2 {
		for i := range scenarios {
			summary, err := se.CalcEngine.RunScenarioNamed(ctx, config, scenarios[i].Name)
			if err != nil {
				return nil, err
			}
			summaries[i] = summary
		}
		return summaries, nil
	}

	errs := make([]error, len(scenarios))
	pool := pond.New(parallelism, len(scenarios))
	for i := range scenarios {
		i := i
		pool.Submit(func() {
			summaries[i], errs[i] = se.CalcEngine.RunScenarioNamed(ctx, config, scenarios[i].Name)
		})
	}
	pool.StopAndWait()

	for i := range scenarios {
		if errs[i] != nil {
			return nil, errs[i]
		}
		if summaries[i] == nil {
			return nil, fmt.Errorf("scenario %q: run produced no result", scenarios[i].Name)
		}
	}
	return summaries, nil
}
