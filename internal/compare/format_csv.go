package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats sweep results as CSV, one row per scenario.
type CSVFormatter struct{}

// Format generates CSV output for sweep results
func (cf *CSVFormatter) Format(sweepSet *SweepSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"MonthlyPayment",
		"PayoffYear",
		"TotalInterestPaid",
		"LifetimeTax",
		"FirstYearSurplus",
		"FinalInvestmentBalance",
		"BalanceDiffFromBase",
		"BalancePctFromBase",
		"InterestDiffFromBase",
		"TaxDiffFromBase",
		"PayoffYearDiff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if sweepSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(sweepSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range sweepSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&sweepSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a sweep result as a CSV row
func (cf *CSVFormatter) formatRow(result *SweepResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.MonthlyPayment.StringFixed(2),
		formatInt(result.PayoffYear),
		result.TotalInterestPaid.StringFixed(2),
		result.LifetimeTax.StringFixed(2),
		result.FirstYearSurplus.StringFixed(2),
		result.FinalInvestmentBalance.StringFixed(2),
		result.BalanceDiffFromBase.StringFixed(2),
		result.BalancePctFromBase.StringFixed(2),
		result.InterestDiffFromBase.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
		formatInt(result.PayoffYearDiff),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
