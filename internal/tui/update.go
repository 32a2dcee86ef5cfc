package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.homeModel.SetSize(msg.Width, msg.Height)
		m.scenariosModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		m.chartModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.configPath = msg.Path
		m.loading = false
		m.homeModel.SetConfig(msg.Config)
		scenarios := msg.Config.ResolvedScenarios()
		m.scenariosModel.SetScenarios(msg.Config.Household, scenarios)
		// With more than one scenario a background sweep fills in the
		// dashboard comparison line.
		if len(scenarios) > 1 {
			return m, runSweepCmd(m.calcEngine, m.config)
		}
		return m, nil

	case ScenarioSelectedMsg:
		m.selectedScenario = msg.ScenarioName
		m.loading = true
		m.loadingMessage = "Running " + msg.ScenarioName + "..."
		return m, runScenarioCmd(m.calcEngine, m.config, msg.ScenarioName)

	case SimulationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.summary = msg.Summary
		m.resultsModel.SetResults(msg.ScenarioName, msg.Summary)
		m.chartModel.SetResults(msg.ScenarioName, msg.Summary)
		m.previousScene = m.currentScene
		m.currentScene = SceneResults
		return m, nil

	case SweepCompleteMsg:
		if msg.Err == nil {
			m.homeModel.SetComparison(msg.Compact)
		}
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes global shortcuts, then delegates to the scene.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A dismissed error returns to the previous scene.
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		if m.currentScene != SceneHelp {
			return m, navigateTo(SceneHelp)
		}

	case "esc":
		if m.currentScene != SceneHome {
			if m.previousScene != m.currentScene {
				return m, navigateTo(m.previousScene)
			}
			return m, navigateTo(SceneHome)
		}

	case "h":
		if m.currentScene != SceneHome {
			return m, navigateTo(SceneHome)
		}

	case "s":
		if m.currentScene != SceneScenarios {
			return m, navigateTo(SceneScenarios)
		}

	case "r":
		if m.currentScene != SceneResults {
			return m, navigateTo(SceneResults)
		}

	case "c":
		if m.currentScene != SceneChart {
			return m, navigateTo(SceneChart)
		}
	}

	return m.updateCurrentScene(msg)
}

// navigateTo wraps a scene switch in a command.
func navigateTo(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates a message to the active scene's model.
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneScenarios:
		m.scenariosModel, cmd = m.scenariosModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case SceneChart:
		m.chartModel, cmd = m.chartModel.Update(msg)
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	}
	return m, cmd
}
