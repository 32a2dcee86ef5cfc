package compare

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	sweepTitleStyle   = lipgloss.NewStyle().Bold(true)
	sweepHeaderStyle  = lipgloss.NewStyle().Bold(true)
	sweepSectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// TableFormatter formats a sweep as a console table with per-scenario deltas
// and findings. Styling degrades to plain text when stdout is not a terminal.
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(sweepSet *SweepSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString(sweepTitleStyle.Render("MORTGAGE SCENARIO COMPARISON") + "\n")
	sb.WriteString(strings.Repeat("=", 90) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", sweepSet.BaseScenarioName))
	if sweepSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", sweepSet.ConfigPath))
	}
	sb.WriteString("\n")

	// Column widths
	nameWidth := 25
	numWidth := 15

	// Table header
	header := fmt.Sprintf("%-*s %*s %*s %*s %*s",
		nameWidth, "Scenario",
		numWidth, "Payment",
		numWidth, "Payoff",
		numWidth, "Lifetime Tax",
		numWidth, "Final Balance")
	sb.WriteString(sweepHeaderStyle.Render(header) + "\n")
	sb.WriteString(strings.Repeat("-", 90) + "\n")

	// Base scenario row
	if sweepSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(sweepSet.BaseResult, nameWidth, numWidth, true))
	}

	// Alternative scenarios
	if len(sweepSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 90) + "\n")
		for i := range sweepSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&sweepSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 90) + "\n")

	// Comparison details (deltas from base)
	if len(sweepSet.AlternativeResults) > 0 {
		sb.WriteString("\n" + sweepSectionStyle.Render("COMPARISON TO BASE") + "\n")
		sb.WriteString(strings.Repeat("-", 90) + "\n")

		for i := range sweepSet.AlternativeResults {
			alt := &sweepSet.AlternativeResults[i]
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))

			balanceSymbol := tf.deltaSymbol(alt.BalanceDiffFromBase)
			sb.WriteString(fmt.Sprintf("  Final Balance:      %s$%s (%s%%)\n",
				balanceSymbol,
				tf.formatDecimal(alt.BalanceDiffFromBase.Abs()),
				alt.BalancePctFromBase.StringFixed(1)))

			if !alt.InterestDiffFromBase.IsZero() {
				// Less interest paid reads as +
				interestSymbol := tf.deltaSymbol(alt.InterestDiffFromBase.Neg())
				sb.WriteString(fmt.Sprintf("  Interest Paid:      %s$%s\n",
					interestSymbol,
					tf.formatDecimal(alt.InterestDiffFromBase.Abs())))
			}

			if !alt.TaxDiffFromBase.IsZero() {
				// Lower taxes read as +
				taxSymbol := tf.deltaSymbol(alt.TaxDiffFromBase.Neg())
				sb.WriteString(fmt.Sprintf("  Tax Impact:         %s$%s\n",
					taxSymbol,
					tf.formatDecimal(alt.TaxDiffFromBase.Abs())))
			}

			if alt.PayoffYearDiff != 0 {
				if alt.PayoffYearDiff < 0 {
					sb.WriteString(fmt.Sprintf("  Payoff:             %d years sooner\n", -alt.PayoffYearDiff))
				} else {
					sb.WriteString(fmt.Sprintf("  Payoff:             %d years later\n", alt.PayoffYearDiff))
				}
			}

			if !alt.SurplusDiffFromBase.IsZero() {
				surplusSymbol := tf.deltaSymbol(alt.SurplusDiffFromBase)
				sb.WriteString(fmt.Sprintf("  First-Year Surplus: %s$%s\n",
					surplusSymbol,
					tf.formatDecimal(alt.SurplusDiffFromBase.Abs())))
			}
		}
		sb.WriteString("\n")
	}

	// Findings
	if len(sweepSet.Findings) > 0 {
		sb.WriteString("\n" + sweepSectionStyle.Render("FINDINGS") + "\n")
		sb.WriteString(strings.Repeat("-", 90) + "\n")
		for _, finding := range sweepSet.Findings {
			sb.WriteString(fmt.Sprintf("• %s\n", finding))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *SweepResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	payoffStr := fmt.Sprintf("year %d", result.PayoffYear)
	if result.PayoffYear == 0 {
		payoffStr = "beyond horizon"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "$"+result.MonthlyPayment.StringFixed(2),
		numWidth, payoffStr,
		numWidth, "$"+tf.formatDecimal(result.LifetimeTax),
		numWidth, "$"+tf.formatDecimal(result.FinalInvestmentBalance))
}

// formatDecimal formats a decimal for display (in thousands or millions)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + prefix for favorable deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary of the sweep, showing
// each alternative's final balance delta against the base.
func (tf *TableFormatter) FormatCompact(sweepSet *SweepSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s", sweepSet.BaseScenarioName))

	for i := range sweepSet.AlternativeResults {
		alt := &sweepSet.AlternativeResults[i]
		balanceChange := "="
		if alt.BalanceDiffFromBase.IsPositive() {
			balanceChange = "+$" + tf.formatDecimal(alt.BalanceDiffFromBase)
		} else if alt.BalanceDiffFromBase.IsNegative() {
			balanceChange = "-$" + tf.formatDecimal(alt.BalanceDiffFromBase.Abs())
		}
		sb.WriteString(fmt.Sprintf(" | %s: %s", alt.ScenarioName, balanceChange))
	}

	return sb.String()
}
