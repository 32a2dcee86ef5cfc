// Package tuimsg defines the messages scenes and commands deliver to the root
// model. Scenes emit these instead of importing the tui package directly.
package tuimsg

import (
	"github.com/rgehrsitz/mpgo/internal/domain"
)

// ConfigLoadedMsg signals the configuration has been loaded.
type ConfigLoadedMsg struct {
	Config *domain.Configuration
	Path   string
}

// ErrorMsg carries an error to display to the user.
type ErrorMsg struct {
	Err error
}

// ScenarioSelectedMsg signals a scenario was chosen for a run.
type ScenarioSelectedMsg struct {
	ScenarioName string
}

// SimulationCompleteMsg signals a scenario run has finished.
type SimulationCompleteMsg struct {
	ScenarioName string
	Summary      *domain.ScenarioSummary
	Err          error
}

// SweepCompleteMsg delivers the one-line scenario comparison shown on the
// home dashboard. A failed sweep leaves the line empty.
type SweepCompleteMsg struct {
	Compact string
	Err     error
}
