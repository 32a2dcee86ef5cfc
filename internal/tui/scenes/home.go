package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/rgehrsitz/mpgo/internal/tui/tuistyles"
)

// HomeModel is the dashboard scene: the loaded household at a glance, the
// configured scenarios, and the sweep comparison line once it arrives.
type HomeModel struct {
	config     *domain.Configuration
	comparison string
	width      int
	height     int
}

// NewHomeModel creates the home scene model.
func NewHomeModel() *HomeModel {
	return &HomeModel{}
}

// SetConfig updates the configuration shown on the dashboard.
func (m *HomeModel) SetConfig(config *domain.Configuration) {
	m.config = config
}

// SetComparison sets the one-line scenario comparison.
func (m *HomeModel) SetComparison(comparison string) {
	m.comparison = comparison
}

// SetSize updates the scene dimensions.
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the home scene. Navigation is handled by the
// parent, so the dashboard is passive.
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	return m, nil
}

// View renders the dashboard.
func (m *HomeModel) View() string {
	if m.config == nil {
		return tuistyles.BorderStyle.Render("Loading configuration...")
	}

	var content strings.Builder

	content.WriteString(m.renderHousehold())
	content.WriteString("\n")
	content.WriteString(m.renderScenarios())
	if m.comparison != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.SectionStyle.Render("Scenario Comparison"))
		content.WriteString("\n  ")
		content.WriteString(m.comparison)
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(m.renderQuickActions())
	content.WriteString("\n")
	content.WriteString(tuistyles.HintStyle.Render("Tip: press 's' to browse scenarios and run one"))

	return tuistyles.BorderStyle.Render(content.String())
}

// renderHousehold summarizes the base household.
func (m *HomeModel) renderHousehold() string {
	h := m.config.Household

	var content strings.Builder
	content.WriteString(tuistyles.SectionStyle.Render("Base Household"))
	content.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Home Price", tuistyles.FormatCurrency(h.HomePrice)},
		{"Down Payment", tuistyles.FormatCurrency(h.DownPayment)},
		{"Loan Amount", tuistyles.FormatCurrency(h.LoanAmount())},
		{"Mortgage", fmt.Sprintf("%d years at %s", h.MortgageYears, tuistyles.FormatPercent(h.MortgageRate))},
		{"Annual Income", tuistyles.FormatCurrency(h.AnnualIncome)},
		{"Horizon", fmt.Sprintf("%d years", h.SimulationYears)},
	}
	for _, row := range rows {
		content.WriteString(tuistyles.LabelStyle.Render(fmt.Sprintf("  %-14s", row.label)))
		content.WriteString(tuistyles.ValueStyle.Render(row.value))
		content.WriteString("\n")
	}

	return content.String()
}

// renderScenarios lists up to five configured scenarios.
func (m *HomeModel) renderScenarios() string {
	var content strings.Builder
	content.WriteString(tuistyles.SectionStyle.Render("Scenarios"))
	content.WriteString("\n")

	scenarios := m.config.ResolvedScenarios()
	displayCount := len(scenarios)
	if displayCount > 5 {
		displayCount = 5
	}
	for i := 0; i < displayCount; i++ {
		content.WriteString(tuistyles.LabelStyle.Render("  •"))
		content.WriteString(tuistyles.ValueStyle.Render(" " + scenarios[i].Name))
		content.WriteString("\n")
	}
	if len(scenarios) > 5 {
		content.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf("  ... and %d more", len(scenarios)-5)))
		content.WriteString("\n")
	}

	return content.String()
}

// renderQuickActions shows the navigation shortcuts.
func (m *HomeModel) renderQuickActions() string {
	var content strings.Builder
	content.WriteString(tuistyles.SectionStyle.Render("Quick Actions"))
	content.WriteString("\n")

	actions := []struct {
		key  string
		desc string
	}{
		{"s", "Browse and run scenarios"},
		{"r", "View per-year results"},
		{"c", "Plot loan vs investment balances"},
		{"?", "Show help"},
	}
	for _, action := range actions {
		content.WriteString("  ")
		content.WriteString(tuistyles.StatusKeyStyle.Render(action.key))
		content.WriteString(tuistyles.ValueStyle.Render("  " + action.desc))
		content.WriteString("\n")
	}

	return content.String()
}
