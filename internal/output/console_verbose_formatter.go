package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/mpgo/internal/domain"
)

// ConsoleVerboseFormatter renders the full detailed console report via the
// pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ProjectionSet) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "MORTGAGE, TAX & INVESTMENT PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))

		fmt.Fprintln(&buf, "MORTGAGE:")
		fmt.Fprintf(&buf, "  Home Price:             %s\n", FormatCurrency(sc.Household.HomePrice))
		fmt.Fprintf(&buf, "  Down Payment:           %s\n", FormatCurrency(sc.Household.DownPayment))
		fmt.Fprintf(&buf, "  Loan Amount:            %s\n", FormatCurrency(sc.Household.LoanAmount()))
		fmt.Fprintf(&buf, "  Rate / Term:            %s / %d years\n", FormatPercentage(sc.Household.MortgageRate), sc.Household.MortgageYears)
		fmt.Fprintf(&buf, "  Monthly Payment:        %s\n", FormatCurrency(sc.MonthlyPayment))
		if sc.PayoffYear > 0 {
			fmt.Fprintf(&buf, "  Paid Off In Year:       %d\n", sc.PayoffYear)
		} else {
			fmt.Fprintln(&buf, "  Paid Off In Year:       beyond horizon")
		}
		fmt.Fprintf(&buf, "  Total Interest Paid:    %s\n", FormatCurrency(sc.TotalInterestPaid))
		fmt.Fprintln(&buf)

		if len(sc.Years) > 0 {
			first := sc.Years[0]
			fmt.Fprintln(&buf, "FIRST YEAR LEDGER:")
			fmt.Fprintln(&buf, "----------------------------------------")
			fmt.Fprintf(&buf, "  Gross Income:           %s\n", FormatCurrency(first.Income))
			fmt.Fprintf(&buf, "  Living Expenses:        %s\n", FormatCurrency(first.LivingExpenses))
			fmt.Fprintf(&buf, "  Mortgage Payments:      %s\n", FormatCurrency(first.MortgagePayments))
			fmt.Fprintf(&buf, "  Mortgage Interest:      %s\n", FormatCurrency(first.MortgageInterest))
			fmt.Fprintf(&buf, "  State Tax:              %s\n", FormatCurrency(first.StateTax))
			deductionKind := "standard"
			if first.Itemized() {
				deductionKind = "itemized"
			}
			fmt.Fprintf(&buf, "  Applied Deduction:      %s (%s)\n", FormatCurrency(first.AppliedDeduction), deductionKind)
			fmt.Fprintf(&buf, "  Taxable Income:         %s\n", FormatCurrency(first.TaxableIncome))
			fmt.Fprintf(&buf, "  Federal Tax:            %s\n", FormatCurrency(first.FederalTax))
			fmt.Fprintf(&buf, "  Investable Surplus:     %s\n", FormatCurrency(first.InvestableSurplus))
			fmt.Fprintln(&buf)
		}

		fmt.Fprintf(&buf, "HORIZON TOTALS (%d YEARS):\n", len(sc.Years))
		fmt.Fprintln(&buf, "----------------------------------------")
		fmt.Fprintf(&buf, "  Total Federal Tax:      %s\n", FormatCurrency(sc.TotalFederalTax))
		fmt.Fprintf(&buf, "  Total State Tax:        %s\n", FormatCurrency(sc.TotalStateTax))
		fmt.Fprintf(&buf, "  Final Investments:      %s\n", FormatCurrency(sc.FinalInvestmentBalance))
		fmt.Fprintln(&buf)

		writeYearTable(&buf, sc.Years)
		fmt.Fprintln(&buf)
	}

	writeComparison(&buf, results)

	return buf.Bytes(), nil
}

// writeYearTable renders the per-year projection as a fixed-width table.
func writeYearTable(buf *bytes.Buffer, years []domain.YearRecord) {
	if len(years) == 0 {
		return
	}
	fmt.Fprintln(buf, "PER-YEAR PROJECTION:")
	fmt.Fprintf(buf, "%-5s %15s %15s %13s %13s %15s %16s\n",
		"Year", "Loan Balance", "Income", "State Tax", "Federal Tax", "Surplus", "Investments")
	for _, yr := range years {
		fmt.Fprintf(buf, "%-5d %15s %15s %13s %13s %15s %16s\n",
			yr.Year,
			yr.LoanBalance.StringFixed(2),
			yr.Income.StringFixed(2),
			yr.StateTax.StringFixed(2),
			yr.FederalTax.StringFixed(2),
			yr.InvestableSurplus.StringFixed(2),
			yr.InvestmentBalance.StringFixed(2),
		)
	}
}

// writeComparison names the scenario with the highest final investment
// balance and the margin over each of the others.
func writeComparison(buf *bytes.Buffer, results *domain.ProjectionSet) {
	if len(results.Scenarios) < 2 {
		return
	}
	best := results.Scenarios[0]
	for _, sc := range results.Scenarios[1:] {
		if sc.FinalInvestmentBalance.GreaterThan(best.FinalInvestmentBalance) {
			best = sc
		}
	}
	fmt.Fprintln(buf, "SUMMARY")
	fmt.Fprintln(buf, "=======")
	fmt.Fprintf(buf, "Highest final investment balance: %s (%s)\n", best.Name, FormatCurrency(best.FinalInvestmentBalance))
	for _, sc := range results.Scenarios {
		if sc.Name == best.Name {
			continue
		}
		margin := best.FinalInvestmentBalance.Sub(sc.FinalInvestmentBalance)
		fmt.Fprintf(buf, "  ahead of %s by %s\n", sc.Name, FormatCurrency(margin))
	}
}
