package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/rgehrsitz/mpgo/internal/tui/components"
	"github.com/rgehrsitz/mpgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/mpgo/internal/tui/tuistyles"
)

// ScenariosModel is the scenario browser: a selection list on the left, the
// selected scenario's overrides and resolved mortgage on the right.
type ScenariosModel struct {
	base          domain.Household
	scenarios     []domain.Scenario
	cards         []*components.ScenarioCard
	selectedIndex int
	width         int
	height        int
}

// NewScenariosModel creates the scenarios scene model.
func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{}
}

// SetScenarios replaces the scenario list and the base household the
// overrides resolve against.
func (m *ScenariosModel) SetScenarios(base domain.Household, scenarios []domain.Scenario) {
	m.base = base
	m.scenarios = scenarios
	m.cards = make([]*components.ScenarioCard, 0, len(scenarios))

	for i := range scenarios {
		card := components.NewScenarioCard(scenarios[i].Name)
		for _, override := range scenarioOverrides(&scenarios[i]) {
			card.AddOverride(override)
		}
		m.cards = append(m.cards, card)
	}

	if m.selectedIndex >= len(m.scenarios) {
		m.selectedIndex = 0
	}
}

// SetSize updates the scene dimensions.
func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedScenario returns the currently selected scenario name.
func (m *ScenariosModel) SelectedScenario() string {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.scenarios) {
		return m.scenarios[m.selectedIndex].Name
	}
	return ""
}

// Update handles messages for the scenarios scene.
func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input.
func (m *ScenariosModel) handleKeyPress(msg tea.KeyMsg) (*ScenariosModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}

	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.scenarios)-1 {
			m.selectedIndex++
		}

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		return m, m.selectScenario()

	case key.Matches(msg, key.NewBinding(key.WithKeys("g"))):
		m.selectedIndex = 0

	case key.Matches(msg, key.NewBinding(key.WithKeys("G"))):
		if len(m.scenarios) > 0 {
			m.selectedIndex = len(m.scenarios) - 1
		}
	}

	return m, nil
}

// selectScenario returns a command that requests a run of the selection.
func (m *ScenariosModel) selectScenario() tea.Cmd {
	scenarioName := m.SelectedScenario()
	if scenarioName == "" {
		return nil
	}
	return func() tea.Msg {
		return tuimsg.ScenarioSelectedMsg{ScenarioName: scenarioName}
	}
}

// View renders the scenarios scene.
func (m *ScenariosModel) View() string {
	if len(m.scenarios) == 0 {
		return `No scenarios available.

Please load a configuration file with scenarios defined.

Press ESC to return to home.`
	}

	for i, card := range m.cards {
		card.SetSelected(i == m.selectedIndex)
	}

	leftPane := m.renderList()
	rightPane := m.renderDetails(&m.scenarios[m.selectedIndex])

	content := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, "  ", rightPane)
	content += "\n\n"
	content += tuistyles.HelpStyle.Render("↑/k up • ↓/j down • Enter run • g top • G bottom • ESC back")

	return content
}

// renderList renders the selection pane.
func (m *ScenariosModel) renderList() string {
	listStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2).
		Width(40)

	title := tuistyles.TitleStyle.Render("Scenarios")
	list := components.ScenarioListCompact(m.cards, m.selectedIndex)

	return listStyle.Render(title + "\n\n" + list)
}

// renderDetails renders the selected scenario's overrides and the mortgage
// they resolve to.
func (m *ScenariosModel) renderDetails(sc *domain.Scenario) string {
	detailStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorPrimary).
		Padding(1, 2).
		Width(52)

	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render(sc.Name))
	content.WriteString("\n\n")

	content.WriteString(tuistyles.SectionStyle.Render("Overrides"))
	content.WriteString("\n")
	overrides := scenarioOverrides(sc)
	if len(overrides) == 0 {
		content.WriteString(tuistyles.SubtitleStyle.Render("  inherits every base household value"))
		content.WriteString("\n")
	} else {
		for _, override := range overrides {
			content.WriteString(tuistyles.ValueStyle.Render("  • " + override))
			content.WriteString("\n")
		}
	}

	resolved := sc.Resolve(m.base)
	content.WriteString("\n")
	content.WriteString(tuistyles.SectionStyle.Render("Resolved"))
	content.WriteString("\n")
	rows := []struct {
		label string
		value string
	}{
		{"Loan", tuistyles.FormatCurrency(resolved.LoanAmount())},
		{"Term", fmt.Sprintf("%d years at %s", resolved.MortgageYears, tuistyles.FormatPercent(resolved.MortgageRate))},
		{"Horizon", fmt.Sprintf("%d years", resolved.SimulationYears)},
	}
	for _, row := range rows {
		content.WriteString(tuistyles.LabelStyle.Render(fmt.Sprintf("  %-9s", row.label)))
		content.WriteString(tuistyles.ValueStyle.Render(row.value))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.HintStyle.Render("Press Enter to run this scenario"))

	return detailStyle.Render(content.String())
}

// scenarioOverrides lists a scenario's overridden fields as display strings.
func scenarioOverrides(sc *domain.Scenario) []string {
	var overrides []string
	if sc.HomePrice != nil {
		overrides = append(overrides, "home price "+tuistyles.FormatCurrency(*sc.HomePrice))
	}
	if sc.DownPayment != nil {
		overrides = append(overrides, "down payment "+tuistyles.FormatCurrency(*sc.DownPayment))
	}
	if sc.SimulationYears != nil {
		overrides = append(overrides, fmt.Sprintf("horizon %d years", *sc.SimulationYears))
	}
	if sc.MortgageYears != nil {
		overrides = append(overrides, fmt.Sprintf("term %d years", *sc.MortgageYears))
	}
	if sc.MortgageRate != nil {
		overrides = append(overrides, "rate "+tuistyles.FormatPercent(*sc.MortgageRate))
	}
	if sc.AnnualIncome != nil {
		overrides = append(overrides, "income "+tuistyles.FormatCurrency(*sc.AnnualIncome))
	}
	if sc.IncomeGrowthRate != nil {
		overrides = append(overrides, "income growth "+tuistyles.FormatPercent(*sc.IncomeGrowthRate))
	}
	if sc.LivingExpenses != nil {
		overrides = append(overrides, "living expenses "+tuistyles.FormatCurrency(*sc.LivingExpenses))
	}
	if sc.StandardDeduction != nil {
		overrides = append(overrides, "standard deduction "+tuistyles.FormatCurrency(*sc.StandardDeduction))
	}
	if sc.InflationRate != nil {
		overrides = append(overrides, "inflation "+tuistyles.FormatPercent(*sc.InflationRate))
	}
	if sc.InvestmentReturnRate != nil {
		overrides = append(overrides, "return "+tuistyles.FormatPercent(*sc.InvestmentReturnRate))
	}
	if sc.CharitableRate != nil {
		overrides = append(overrides, "charitable "+tuistyles.FormatPercent(*sc.CharitableRate))
	}
	return overrides
}
