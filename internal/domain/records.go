package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthRecord is one month of the amortization schedule. Past the mortgage
// term the schedule keeps emitting zero-payment records so the monthly
// history always spans the full simulation horizon.
type MonthRecord struct {
	// Month is 1-based and runs across the whole horizon, not just the term.
	Month     int             `json:"month"`
	Payment   decimal.Decimal `json:"payment"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	// LoanBalance is the outstanding principal after this month's payment.
	LoanBalance decimal.Decimal `json:"loan_balance"`
}

// YearRecord is one simulated year: the aggregated mortgage flows, the full
// tax and deduction breakdown, and the investment balance after compounding
// that year's surplus.
type YearRecord struct {
	// Year is the elapsed year count after this step, so the first record
	// has Year 1.
	Year int `json:"year"`

	LoanBalance      decimal.Decimal `json:"loan_balance"`
	Income           decimal.Decimal `json:"income"`
	MortgageInterest decimal.Decimal `json:"mortgage_interest"`
	MortgagePayments decimal.Decimal `json:"mortgage_payments"`
	LivingExpenses   decimal.Decimal `json:"living_expenses"`

	StateTax                  decimal.Decimal `json:"state_tax"`
	StandardDeduction         decimal.Decimal `json:"standard_deduction"`
	CharitableDeduction       decimal.Decimal `json:"charitable_deduction"`
	SALTDeduction             decimal.Decimal `json:"salt_deduction"`
	MortgageInterestDeduction decimal.Decimal `json:"mortgage_interest_deduction"`
	ItemizedDeduction         decimal.Decimal `json:"itemized_deduction"`
	AppliedDeduction          decimal.Decimal `json:"applied_deduction"`
	TaxableIncome             decimal.Decimal `json:"taxable_income"`
	FederalTax                decimal.Decimal `json:"federal_tax"`

	InvestableSurplus decimal.Decimal `json:"investable_surplus"`
	InvestmentBalance decimal.Decimal `json:"investment_balance"`
}

// TotalTax is the year's combined state and federal tax.
func (yr *YearRecord) TotalTax() decimal.Decimal {
	return yr.StateTax.Add(yr.FederalTax)
}

// Itemized reports whether the itemized deduction beat the standard one.
func (yr *YearRecord) Itemized() bool {
	return yr.ItemizedDeduction.GreaterThan(yr.StandardDeduction)
}

// ScenarioSummary is the complete result of one scenario run: the resolved
// inputs, the derived payment, headline totals, and the per-month and
// per-year histories.
type ScenarioSummary struct {
	Name      string    `json:"name"`
	Household Household `json:"household"`

	MonthlyPayment decimal.Decimal `json:"monthly_payment"`

	// PayoffYear is the first year whose ending loan balance is zero, or 0
	// when the loan is never retired inside the horizon.
	PayoffYear int `json:"payoff_year"`

	TotalInterestPaid      decimal.Decimal `json:"total_interest_paid"`
	TotalFederalTax        decimal.Decimal `json:"total_federal_tax"`
	TotalStateTax          decimal.Decimal `json:"total_state_tax"`
	FirstYearSurplus       decimal.Decimal `json:"first_year_surplus"`
	FinalInvestmentBalance decimal.Decimal `json:"final_investment_balance"`

	Years  []YearRecord  `json:"years"`
	Months []MonthRecord `json:"months,omitempty"`
}

// FinalYear returns the last year record, or nil for an empty run.
func (ss *ScenarioSummary) FinalYear() *YearRecord {
	if len(ss.Years) == 0 {
		return nil
	}
	return &ss.Years[len(ss.Years)-1]
}

// ProjectionSet bundles the scenario results of one invocation for the
// reporting layer.
type ProjectionSet struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Scenarios   []ScenarioSummary `json:"scenarios"`
}
