package scenes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/rgehrsitz/mpgo/internal/tui/components"
	"github.com/rgehrsitz/mpgo/internal/tui/tuistyles"
)

// ResultsModel shows one scenario run: headline metric cards on top, the
// scrollable per-year table below.
type ResultsModel struct {
	scenarioName string
	summary      *domain.ScenarioSummary
	table        table.Model
	width        int
	height       int
}

// NewResultsModel creates the results scene model.
func NewResultsModel() *ResultsModel {
	columns := []table.Column{
		{Title: "Year", Width: 5},
		{Title: "Loan Balance", Width: 13},
		{Title: "Income", Width: 12},
		{Title: "Fed Tax", Width: 11},
		{Title: "State Tax", Width: 11},
		{Title: "Surplus", Width: 12},
		{Title: "Investments", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(tuistyles.ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	styles.Selected = styles.Selected.
		Foreground(tuistyles.ColorForeground).
		Background(lipgloss.Color("236")).
		Bold(false)
	t.SetStyles(styles)

	return &ResultsModel{table: t}
}

// SetResults replaces the displayed run.
func (m *ResultsModel) SetResults(scenarioName string, summary *domain.ScenarioSummary) {
	m.scenarioName = scenarioName
	m.summary = summary

	rows := make([]table.Row, 0, len(summary.Years))
	for i := range summary.Years {
		yr := &summary.Years[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", yr.Year),
			tuistyles.FormatCurrency(yr.LoanBalance),
			tuistyles.FormatCurrency(yr.Income),
			tuistyles.FormatCurrency(yr.FederalTax),
			tuistyles.FormatCurrency(yr.StateTax),
			tuistyles.FormatCurrency(yr.InvestableSurplus),
			tuistyles.FormatCurrency(yr.InvestmentBalance),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// SetSize updates the scene dimensions.
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	// Title bar, metric cards and help line take roughly 11 rows.
	if tableHeight := height - 11; tableHeight >= 4 {
		m.table.SetHeight(tableHeight)
	}
}

// Update forwards messages to the table for scrolling.
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	if m.summary == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results scene.
func (m *ResultsModel) View() string {
	if m.summary == nil {
		return `No results to display.

Select a scenario and press Enter to run it.

Press s for scenarios, ESC to go back.`
	}

	header := lipgloss.JoinVertical(
		lipgloss.Left,
		tuistyles.TitleStyle.Render("Results"),
		tuistyles.SubtitleStyle.Render("Scenario: "+m.scenarioName),
	)

	metrics := m.renderKeyMetrics()
	help := tuistyles.HelpStyle.Render("↑/↓ scroll • g/G top/bottom • c chart • ESC back")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		metrics,
		"",
		m.table.View(),
		"",
		help,
	)
}

// renderKeyMetrics lays out the headline numbers as cards.
func (m *ResultsModel) renderKeyMetrics() string {
	payoff := "beyond horizon"
	if m.summary.PayoffYear > 0 {
		payoff = fmt.Sprintf("year %d", m.summary.PayoffYear)
	}
	lifetimeTax := m.summary.TotalFederalTax.Add(m.summary.TotalStateTax)

	cards := []*components.MetricCard{
		components.NewMetricCard("Monthly Payment", "$"+m.summary.MonthlyPayment.StringFixed(2)),
		components.NewMetricCard("Loan Paid Off", payoff).
			WithDescription("interest " + tuistyles.FormatCurrencyShort(m.summary.TotalInterestPaid.InexactFloat64())),
		components.NewMetricCard("Lifetime Tax", tuistyles.FormatCurrencyShort(lifetimeTax.InexactFloat64())).
			WithDescription("federal + state"),
		components.NewMetricCard("Final Balance", tuistyles.FormatCurrencyShort(m.summary.FinalInvestmentBalance.InexactFloat64())),
	}

	return components.MetricGrid(cards, 4)
}
