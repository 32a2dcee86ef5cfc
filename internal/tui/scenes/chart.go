package scenes

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/rgehrsitz/mpgo/internal/tui/components"
	"github.com/rgehrsitz/mpgo/internal/tui/tuistyles"
)

// ChartModel plots the last run's loan balance against the investment
// balance across the horizon.
type ChartModel struct {
	scenarioName string
	summary      *domain.ScenarioSummary
	width        int
	height       int
}

// NewChartModel creates the chart scene model.
func NewChartModel() *ChartModel {
	return &ChartModel{}
}

// SetResults replaces the plotted run.
func (m *ChartModel) SetResults(scenarioName string, summary *domain.ScenarioSummary) {
	m.scenarioName = scenarioName
	m.summary = summary
}

// SetSize updates the scene dimensions.
func (m *ChartModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the chart scene. The plot is read-only.
func (m *ChartModel) Update(msg tea.Msg) (*ChartModel, tea.Cmd) {
	return m, nil
}

// View renders the chart scene.
func (m *ChartModel) View() string {
	if m.summary == nil {
		return `No results to plot.

Select a scenario and press Enter to run it.

Press s for scenarios, ESC to go back.`
	}

	loanPoints := make([]float64, 0, len(m.summary.Years))
	investPoints := make([]float64, 0, len(m.summary.Years))
	labels := make([]string, 0, len(m.summary.Years))
	for i := range m.summary.Years {
		yr := &m.summary.Years[i]
		loanPoints = append(loanPoints, yr.LoanBalance.InexactFloat64())
		investPoints = append(investPoints, yr.InvestmentBalance.InexactFloat64())
		labels = append(labels, fmt.Sprintf("%d", yr.Year))
	}

	chartWidth := m.width - 8
	chartHeight := m.height - 12
	if chartHeight < 8 {
		chartHeight = 8
	}

	chart := components.NewASCIIChart("Loan vs Investment Balance - " + m.scenarioName).
		AddSeries("Loan balance", loanPoints, tuistyles.ColorChartLoan).
		AddSeries("Investments", investPoints, tuistyles.ColorChartInvestment).
		WithLabels(labels).
		WithSize(chartWidth, chartHeight).
		WithXAxisLabel("Year")

	return chart.Render() + "\n\n" +
		tuistyles.HelpStyle.Render("r results • s scenarios • ESC back")
}
