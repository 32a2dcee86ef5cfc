// Package tuistyles holds the shared lipgloss palette and styles for the TUI.
// It lives below the scene and component packages so all of them can import it
// without cycles.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Colors
var (
	ColorPrimary    = lipgloss.Color("81")  // headings, selection
	ColorSecondary  = lipgloss.Color("173") // section labels
	ColorSuccess    = lipgloss.Color("78")
	ColorDanger     = lipgloss.Color("203")
	ColorInfo       = lipgloss.Color("116")
	ColorMuted      = lipgloss.Color("241")
	ColorBorder     = lipgloss.Color("238")
	ColorForeground = lipgloss.Color("252")

	ColorChartLoan       = lipgloss.Color("203")
	ColorChartInvestment = lipgloss.Color("78")
)

// Base styles
var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	SectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)

	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
	StatusKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	SelectedItemStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	UnselectedItemStyle = lipgloss.NewStyle().Foreground(ColorForeground)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ValueStyle = lipgloss.NewStyle().Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorForeground)

	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo)
	HintStyle  = lipgloss.NewStyle().Foreground(ColorInfo).Italic(true)
	HelpStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
)

// usd groups thousands the en-US way, matching the console reports.
var usd = message.NewPrinter(language.English)

// FormatCurrency renders a decimal as whole dollars with grouped thousands,
// the density the TUI wants for on-screen amounts.
func FormatCurrency(amount decimal.Decimal) string {
	f := amount.InexactFloat64()
	if f < 0 {
		return usd.Sprintf("-$%.0f", -f)
	}
	return usd.Sprintf("$%.0f", f)
}

// FormatCurrencyShort abbreviates large amounts for axis labels and cards.
func FormatCurrencyShort(value float64) string {
	abs := value
	sign := ""
	if abs < 0 {
		abs = -abs
		sign = "-"
	}
	switch {
	case abs >= 1_000_000:
		return usd.Sprintf("%s$%.1fM", sign, abs/1_000_000)
	case abs >= 1_000:
		return usd.Sprintf("%s$%.0fK", sign, abs/1_000)
	default:
		return usd.Sprintf("%s$%.0f", sign, abs)
	}
}

// FormatPercent renders a fractional rate as a percentage.
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
