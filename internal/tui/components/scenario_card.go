package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mpgo/internal/tui/tuistyles"
)

// ScenarioCard is a compact scenario overview: the name plus the household
// values the scenario overrides.
type ScenarioCard struct {
	Name       string
	Overrides  []string
	IsSelected bool
	Width      int
}

// NewScenarioCard creates a scenario card.
func NewScenarioCard(name string) *ScenarioCard {
	return &ScenarioCard{
		Name:  name,
		Width: 40,
	}
}

// AddOverride appends one overridden-value line.
func (s *ScenarioCard) AddOverride(override string) *ScenarioCard {
	s.Overrides = append(s.Overrides, override)
	return s
}

// SetSelected marks the card as selected.
func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

// WithWidth sets the card width.
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Render returns the bordered card.
func (s *ScenarioCard) Render() string {
	var content strings.Builder

	content.WriteString(tuistyles.TitleStyle.Render(s.Name))
	content.WriteString("\n")

	if len(s.Overrides) == 0 {
		content.WriteString(tuistyles.SubtitleStyle.Render("inherits the base household"))
	} else {
		for _, o := range s.Overrides {
			content.WriteString(tuistyles.LabelStyle.Render("• " + o))
			content.WriteString("\n")
		}
	}

	borderColor := tuistyles.ColorBorder
	if s.IsSelected {
		borderColor = tuistyles.ColorPrimary
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 2).
		Width(s.Width)

	return cardStyle.Render(strings.TrimRight(content.String(), "\n"))
}

// RenderCompact returns a single-line version for selection lists.
func (s *ScenarioCard) RenderCompact() string {
	parts := []string{s.Name}
	if len(s.Overrides) > 0 {
		parts = append(parts, tuistyles.LabelStyle.Render("• "+s.Overrides[0]))
	}
	return strings.Join(parts, " ")
}

// ScenarioListCompact renders scenario cards as a selection list with a
// cursor on the selected row.
func ScenarioListCompact(cards []*ScenarioCard, selectedIndex int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios available")
	}

	rendered := make([]string, len(cards))
	for i, card := range cards {
		prefix := "  "
		style := tuistyles.UnselectedItemStyle
		if i == selectedIndex {
			prefix = "▸ "
			style = tuistyles.SelectedItemStyle
		}
		rendered[i] = style.Render(prefix + card.RenderCompact())
	}

	return strings.Join(rendered, "\n")
}
