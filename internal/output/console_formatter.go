package output

import (
	"bytes"
	"fmt"

	"github.com/rgehrsitz/mpgo/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ProjectionSet) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range results.Scenarios {
		payoff := "beyond horizon"
		if sc.PayoffYear > 0 {
			payoff = fmt.Sprintf("year %d", sc.PayoffYear)
		}
		fmt.Fprintf(&buf, "%s: Payment=%s Payoff=%s Interest=%s\n",
			sc.Name,
			FormatCurrency(sc.MonthlyPayment),
			payoff,
			FormatCurrency(sc.TotalInterestPaid),
		)
		fmt.Fprintf(&buf, "  TotalTax=%s FirstYearSurplus=%s FinalInvestments=%s\n",
			FormatCurrency(sc.TotalFederalTax.Add(sc.TotalStateTax)),
			FormatCurrency(sc.FirstYearSurplus),
			FormatCurrency(sc.FinalInvestmentBalance),
		)
	}
	return buf.Bytes(), nil
}
