package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/mpgo/internal/domain"
)

// CalculationEngine is the driver: it resolves each configured scenario
// against the base household, runs a fresh Simulation per scenario, and
// bundles the summaries for the reporting layer.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine's logger. Nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(logger Logger) {
	if logger == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = logger
}

// RunScenarios runs every configured scenario sequentially, in configuration
// order. The context is checked between scenarios only; an individual run
// always completes its horizon.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ProjectionSet, error) {
	scenarios := config.ResolvedScenarios()
	policy := config.EffectiveTaxPolicy()

	set := &domain.ProjectionSet{
		GeneratedAt: time.Now(),
		Scenarios:   make([]domain.ScenarioSummary, 0, len(scenarios)),
	}
	for i := range scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		summary, err := ce.runScenario(&scenarios[i], config.Household, policy)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenarios[i].Name, err)
		}
		set.Scenarios = append(set.Scenarios, *summary)
	}
	return set, nil
}

// RunScenarioNamed runs the single configured scenario with the given name.
func (ce *CalculationEngine) RunScenarioNamed(ctx context.Context, config *domain.Configuration, name string) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, sc := range config.ResolvedScenarios() {
		if sc.Name == name {
			summary, err := ce.runScenario(&sc, config.Household, config.EffectiveTaxPolicy())
			if err != nil {
				return nil, fmt.Errorf("scenario %q: %w", name, err)
			}
			return summary, nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found in configuration", name)
}

func (ce *CalculationEngine) runScenario(sc *domain.Scenario, base domain.Household, policy domain.TaxPolicy) (*domain.ScenarioSummary, error) {
	resolved := sc.Resolve(base)
	sim := NewSimulation(&resolved, policy)
	sim.SetLogger(ce.Logger)

	ce.Logger.Infof("running scenario %q: %d year horizon, %d year mortgage",
		sc.Name, resolved.SimulationYears, resolved.MortgageYears)
	if err := sim.Run(); err != nil {
		return nil, err
	}
	return sim.Summary(sc.Name), nil
}
