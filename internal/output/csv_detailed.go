package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/mpgo/internal/domain"
)

// CSVDetailedExporter writes the raw annual projection, one row per scenario
// and year, with the full deduction breakdown.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "csv" }

func (c CSVDetailedExporter) Format(results *domain.ProjectionSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "Year", "LoanBalance", "Income", "MortgageInterest", "MortgagePayments",
		"LivingExpenses", "StateTax", "StandardDeduction", "CharitableDeduction", "SALTDeduction",
		"MortgageInterestDeduction", "ItemizedDeduction", "AppliedDeduction", "TaxableIncome",
		"FederalTax", "InvestableSurplus", "InvestmentBalance",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, yr := range sc.Years {
			row := []string{
				sc.Name,
				strconv.Itoa(yr.Year),
				yr.LoanBalance.StringFixed(2),
				yr.Income.StringFixed(2),
				yr.MortgageInterest.StringFixed(2),
				yr.MortgagePayments.StringFixed(2),
				yr.LivingExpenses.StringFixed(2),
				yr.StateTax.StringFixed(2),
				yr.StandardDeduction.StringFixed(2),
				yr.CharitableDeduction.StringFixed(2),
				yr.SALTDeduction.StringFixed(2),
				yr.MortgageInterestDeduction.StringFixed(2),
				yr.ItemizedDeduction.StringFixed(2),
				yr.AppliedDeduction.StringFixed(2),
				yr.TaxableIncome.StringFixed(2),
				yr.FederalTax.StringFixed(2),
				yr.InvestableSurplus.StringFixed(2),
				yr.InvestmentBalance.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
