package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/mpgo/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per
// scenario). Rows keep configuration order.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv-summary" }

func (c CSVSummarizer) Format(results *domain.ProjectionSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "MonthlyPayment", "PayoffYear", "TotalInterestPaid", "TotalFederalTax", "TotalStateTax", "FirstYearSurplus", "FinalInvestmentBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		row := []string{
			sc.Name,
			sc.MonthlyPayment.StringFixed(2),
			strconv.Itoa(sc.PayoffYear),
			sc.TotalInterestPaid.StringFixed(2),
			sc.TotalFederalTax.StringFixed(2),
			sc.TotalStateTax.StringFixed(2),
			sc.FirstYearSurplus.StringFixed(2),
			sc.FinalInvestmentBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
