package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mpgo/internal/tui/tuistyles"
)

// MetricCard displays a single headline metric with a label and optional
// sub-caption.
type MetricCard struct {
	Label       string
	Value       string
	Description string
	Width       int
}

// NewMetricCard creates a metric card.
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 26,
	}
}

// WithDescription adds a sub-caption under the value.
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width.
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the bordered card.
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) +
		"\n" + tuistyles.MetricValueStyle.Render(m.Value)
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 2).
		Width(m.Width)

	return cardStyle.Render(content)
}

// RenderCompact returns a one-line borderless version.
func (m *MetricCard) RenderCompact() string {
	return tuistyles.MetricLabelStyle.Render(m.Label+":") + " " +
		tuistyles.MetricValueStyle.Render(m.Value)
}

// MetricGrid lays out metric cards in rows of the given column count.
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows []string
	var currentRow []string
	for i, card := range cards {
		currentRow = append(currentRow, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, currentRow...))
			currentRow = nil
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
