package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application.
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneScenarios:
		content = m.scenariosModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneChart:
		content = m.chartModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps scene content with the title bar and status bar.
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	// Title (2) + status (1) + padding (1)
	contentHeight := m.height - 4

	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb.
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("MPGO - Mortgage, Tax & Investment Planner")

	breadcrumb := m.currentScene.String()
	if m.selectedScenario != "" {
		breadcrumb = fmt.Sprintf("%s / %s", m.currentScene.String(), m.selectedScenario)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		SubtitleStyle.Render(breadcrumb),
	)
}

// renderStatusBar renders the bottom bar with keyboard shortcuts.
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("s", "scenarios"),
		formatShortcut("r", "results"),
		formatShortcut("c", "chart"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	// Right-align the configuration source when loaded.
	if m.config != nil {
		source := "built-in example"
		if m.configPath != "" {
			source = m.configPath
		}
		configName := SubtitleStyle.Render(source)
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(configName) - 4
		if width > 0 {
			statusText = statusText + strings.Repeat(" ", width) + configName
		}
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats one keyboard shortcut with key and description.
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderLoading renders the loading message while a command runs.
func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}
	content := BorderStyle.Render("⠋ " + message)
	return m.renderApp(content)
}

// renderError renders an error message.
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err),
	)
	return m.renderApp(content)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	helpText := `MPGO - Mortgage, Tax & Investment Planner

KEYBOARD SHORTCUTS:
  h        Home dashboard
  s        Browse scenarios
  r        Per-year results of the last run
  c        Loan vs investment chart
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

SCENARIOS:
  Use ↑/k and ↓/j to move through the list,
  g/G to jump to the top or bottom,
  Enter to run the selected scenario.

RESULTS:
  The per-year table scrolls with the arrow keys.
  Press c to plot the loan and investment balances.`

	return BorderStyle.Render(helpText)
}
