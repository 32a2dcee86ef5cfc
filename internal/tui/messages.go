package tui

import (
	"github.com/rgehrsitz/mpgo/internal/tui/tuimsg"
)

// Scene identifies a screen in the TUI.
type Scene int

const (
	SceneHome Scene = iota
	SceneScenarios
	SceneResults
	SceneChart
	SceneHelp
)

// String returns a human-readable scene name for the title bar.
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneScenarios:
		return "Scenarios"
	case SceneResults:
		return "Results"
	case SceneChart:
		return "Chart"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene.
type NavigateMsg struct {
	Scene Scene
}

// Messages produced by scenes and commands. Aliased so the root Update can
// match them directly.
type (
	ConfigLoadedMsg       = tuimsg.ConfigLoadedMsg
	ErrorMsg              = tuimsg.ErrorMsg
	ScenarioSelectedMsg   = tuimsg.ScenarioSelectedMsg
	SimulationCompleteMsg = tuimsg.SimulationCompleteMsg
	SweepCompleteMsg      = tuimsg.SweepCompleteMsg
)
