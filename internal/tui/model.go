package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mpgo/internal/calculation"
	"github.com/rgehrsitz/mpgo/internal/compare"
	"github.com/rgehrsitz/mpgo/internal/config"
	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/rgehrsitz/mpgo/internal/tui/scenes"
	"github.com/rgehrsitz/mpgo/internal/tui/tuimsg"
)

// Model is the root application state.
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath string
	config     *domain.Configuration

	// Calculation engine shared by every run
	calcEngine *calculation.CalculationEngine

	// Current selection and its results
	selectedScenario string
	summary          *domain.ScenarioSummary

	// Scene models
	homeModel      *scenes.HomeModel
	scenariosModel *scenes.ScenariosModel
	resultsModel   *scenes.ResultsModel
	chartModel     *scenes.ChartModel

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates the application model. An empty configPath runs the
// built-in example configuration.
func NewModel(configPath string) Model {
	return Model{
		currentScene:   SceneHome,
		configPath:     configPath,
		calcEngine:     calculation.NewCalculationEngine(),
		homeModel:      scenes.NewHomeModel(),
		scenariosModel: scenes.NewScenariosModel(),
		resultsModel:   scenes.NewResultsModel(),
		chartModel:     scenes.NewChartModel(),
		width:          80,
		height:         24,
	}
}

// Init loads the configuration (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd returns a command that loads the configuration file, or the
// built-in example when no path was given.
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		if path == "" {
			return tuimsg.ConfigLoadedMsg{Config: parser.CreateExampleConfiguration()}
		}
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return tuimsg.ErrorMsg{Err: err}
		}
		return tuimsg.ConfigLoadedMsg{Config: cfg, Path: path}
	}
}

// runScenarioCmd returns a command that runs one scenario to completion.
func runScenarioCmd(engine *calculation.CalculationEngine, cfg *domain.Configuration, name string) tea.Cmd {
	return func() tea.Msg {
		summary, err := engine.RunScenarioNamed(context.Background(), cfg, name)
		return tuimsg.SimulationCompleteMsg{
			ScenarioName: name,
			Summary:      summary,
			Err:          err,
		}
	}
}

// runSweepCmd returns a command that sweeps every configured scenario and
// formats the compact comparison line for the home dashboard.
func runSweepCmd(engine *calculation.CalculationEngine, cfg *domain.Configuration) tea.Cmd {
	return func() tea.Msg {
		sweepEngine := compare.NewSweepEngine(engine)
		sweepSet, err := sweepEngine.Sweep(context.Background(), cfg, compare.SweepOptions{})
		if err != nil {
			return tuimsg.SweepCompleteMsg{Err: err}
		}
		formatter := &compare.TableFormatter{}
		return tuimsg.SweepCompleteMsg{Compact: formatter.FormatCompact(sweepSet)}
	}
}
