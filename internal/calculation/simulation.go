package calculation

import (
	"fmt"

	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Simulation advances one household through its mortgage, tax, and
// investment trajectory a year at a time. It owns all mutable run state; the
// household it points at is read-only during a run but may be adjusted
// between runs, and the derived payment and term are recomputed at the start
// of each run so sweeps can vary them.
//
// The lifecycle is Begin (or Run, which wraps it), then StepYear exactly
// simulation_years times. Reset returns to the starting state at any point.
// A Simulation is not safe for concurrent use; sweeps run one instance per
// scenario instead of sharing.
type Simulation struct {
	household *domain.Household
	taxes     *TaxCalculator
	logger    Logger

	// Derived at Begin from the household's then-current values.
	monthlyPayment decimal.Decimal
	monthlyRate    decimal.Decimal
	termMonths     int

	begun             bool
	monthCounter      int
	elapsedYears      int
	loanBalance       decimal.Decimal
	investmentBalance decimal.Decimal
	months            []domain.MonthRecord
	years             []domain.YearRecord
}

// NewSimulation creates a simulation over the household (which must not be
// nil) under the given tax policy. Unset policy fields take defaults.
func NewSimulation(household *domain.Household, policy domain.TaxPolicy) *Simulation {
	s := &Simulation{
		household: household,
		taxes:     NewTaxCalculator(policy),
		logger:    NopLogger{},
	}
	s.Reset()
	return s
}

// SetLogger replaces the simulation's logger. Nil restores the no-op logger.
func (s *Simulation) SetLogger(logger Logger) {
	if logger == nil {
		s.logger = NopLogger{}
		return
	}
	s.logger = logger
}

// Reset restores the starting state from the household's current values:
// loan balance back to the financed principal, investment balance to zero,
// histories cleared, derived payment discarded. The household itself is
// untouched.
func (s *Simulation) Reset() {
	s.monthlyPayment = decimal.Zero
	s.monthlyRate = decimal.Zero
	s.termMonths = 0
	s.begun = false
	s.monthCounter = 0
	s.elapsedYears = 0
	s.loanBalance = s.household.LoanAmount()
	s.investmentBalance = decimal.Zero
	s.months = nil
	s.years = nil
}

// Begin validates the household and performs run setup: state reset to the
// starting values and the constant monthly payment derived from whichever
// principal, rate, and term are current now.
func (s *Simulation) Begin() error {
	if err := s.household.Validate(); err != nil {
		return fmt.Errorf("invalid household: %w", err)
	}
	s.Reset()

	payment, err := MonthlyPayment(s.household.LoanAmount(), s.household.MortgageRate, s.household.MortgageYears)
	if err != nil {
		return fmt.Errorf("amortization setup: %w", err)
	}
	s.monthlyPayment = payment
	s.monthlyRate = s.household.MortgageRate.Div(decimalTwelve)
	s.termMonths = 12 * s.household.MortgageYears
	s.begun = true

	s.logger.Debugf("begin run: principal %s, monthly payment %s over %d years, horizon %d years",
		s.household.LoanAmount().StringFixed(2), payment.StringFixed(2),
		s.household.MortgageYears, s.household.SimulationYears)
	return nil
}

// stepMonth advances the amortization schedule one month. Inside the term it
// splits the constant payment into interest and principal; past the term (or
// once the balance is retired) it emits a zero-payment record so the monthly
// history always spans the horizon.
func (s *Simulation) stepMonth() domain.MonthRecord {
	s.monthCounter++
	record := domain.MonthRecord{Month: s.monthCounter, LoanBalance: s.loanBalance}

	if s.monthCounter > s.termMonths || !s.loanBalance.GreaterThan(decimal.Zero) {
		s.months = append(s.months, record)
		return record
	}

	interest := s.loanBalance.Mul(s.monthlyRate)
	principal := s.monthlyPayment.Sub(interest)
	s.loanBalance = s.loanBalance.Sub(principal)
	if s.loanBalance.Abs().LessThan(balanceSnap) {
		s.loanBalance = decimal.Zero
	}

	record.Payment = s.monthlyPayment
	record.Interest = interest
	record.Principal = principal
	record.LoanBalance = s.loanBalance
	s.months = append(s.months, record)
	return record
}

// StepYear runs twelve monthly amortization steps, evaluates the year's
// taxes and deductions, compounds the investment balance with the year's
// surplus, and appends the year record. Calling it before Begin, or after
// the horizon completed, is a contract violation and fails immediately.
func (s *Simulation) StepYear() error {
	if !s.begun {
		return fmt.Errorf("step before setup: call Begin or Run first")
	}
	if s.elapsedYears >= s.household.SimulationYears {
		return fmt.Errorf("simulation already completed %d years", s.elapsedYears)
	}

	year := s.elapsedYears
	var annualInterest, annualPayments decimal.Decimal
	for m := 0; m < 12; m++ {
		month := s.stepMonth()
		annualInterest = annualInterest.Add(month.Interest)
		annualPayments = annualPayments.Add(month.Payment)
	}

	income := s.household.IncomeAt(year)
	living := s.household.LivingExpensesAt(year)
	standard := s.household.StandardDeductionAt(year)

	stateTax := s.taxes.StateTax(income)
	charitable := income.Mul(s.household.CharitableRate)
	salt := s.taxes.SALTDeduction(income, year, s.household.InflationRate)
	mortgageDed := s.taxes.MortgageInterestDeduction(s.loanBalance, annualInterest)
	itemized := charitable.Add(salt).Add(mortgageDed)
	applied := s.taxes.AppliedDeduction(standard, itemized)

	taxable := income.Sub(applied)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	federal := s.taxes.FederalTax(taxable, year, s.household.InflationRate)

	surplus := income.Sub(living).Sub(stateTax).Sub(federal).Sub(annualPayments)
	s.investmentBalance = s.investmentBalance.Mul(decimalOne.Add(s.household.InvestmentReturnRate)).Add(surplus)
	s.elapsedYears++

	s.years = append(s.years, domain.YearRecord{
		Year:                      s.elapsedYears,
		LoanBalance:               s.loanBalance,
		Income:                    income,
		MortgageInterest:          annualInterest,
		MortgagePayments:          annualPayments,
		LivingExpenses:            living,
		StateTax:                  stateTax,
		StandardDeduction:         standard,
		CharitableDeduction:       charitable,
		SALTDeduction:             salt,
		MortgageInterestDeduction: mortgageDed,
		ItemizedDeduction:         itemized,
		AppliedDeduction:          applied,
		TaxableIncome:             taxable,
		FederalTax:                federal,
		InvestableSurplus:         surplus,
		InvestmentBalance:         s.investmentBalance,
	})

	if surplus.IsNegative() {
		s.logger.Warnf("year %d: expenses and taxes exceed income, surplus %s", s.elapsedYears, surplus.StringFixed(2))
	}
	s.logger.Debugf("year %d: loan %s, income %s, federal %s, state %s, surplus %s, invested %s",
		s.elapsedYears, s.loanBalance.StringFixed(2), income.StringFixed(2),
		federal.StringFixed(2), stateTax.StringFixed(2), surplus.StringFixed(2),
		s.investmentBalance.StringFixed(2))
	return nil
}

// Run executes a full simulation: setup, then one StepYear per horizon year.
// Every configured year runs even if the loan retires early or the
// investment balance goes negative.
func (s *Simulation) Run() error {
	if err := s.Begin(); err != nil {
		return err
	}
	for s.elapsedYears < s.household.SimulationYears {
		if err := s.StepYear(); err != nil {
			return err
		}
	}
	s.logger.Infof("run complete: %d years, final loan %s, final investments %s",
		s.elapsedYears, s.loanBalance.StringFixed(2), s.investmentBalance.StringFixed(2))
	return nil
}

// Completed reports whether the configured horizon has fully run.
func (s *Simulation) Completed() bool {
	return s.begun && s.elapsedYears >= s.household.SimulationYears
}

// ElapsedYears returns the number of years stepped so far.
func (s *Simulation) ElapsedYears() int { return s.elapsedYears }

// LoanBalance returns the current outstanding principal.
func (s *Simulation) LoanBalance() decimal.Decimal { return s.loanBalance }

// InvestmentBalance returns the current accumulated investment balance.
func (s *Simulation) InvestmentBalance() decimal.Decimal { return s.investmentBalance }

// MonthlyPayment returns the payment derived at the last Begin, zero before
// setup.
func (s *Simulation) MonthlyPayment() decimal.Decimal { return s.monthlyPayment }

// Years returns the per-year history accumulated so far.
func (s *Simulation) Years() []domain.YearRecord { return s.years }

// Months returns the per-month amortization history accumulated so far.
func (s *Simulation) Months() []domain.MonthRecord { return s.months }

// Summary assembles the scenario result from the accumulated history.
func (s *Simulation) Summary(name string) *domain.ScenarioSummary {
	summary := &domain.ScenarioSummary{
		Name:           name,
		Household:      *s.household,
		MonthlyPayment: s.monthlyPayment,
		Years:          s.years,
		Months:         s.months,
	}
	for i := range s.years {
		yr := &s.years[i]
		summary.TotalInterestPaid = summary.TotalInterestPaid.Add(yr.MortgageInterest)
		summary.TotalFederalTax = summary.TotalFederalTax.Add(yr.FederalTax)
		summary.TotalStateTax = summary.TotalStateTax.Add(yr.StateTax)
		if summary.PayoffYear == 0 && yr.LoanBalance.IsZero() {
			summary.PayoffYear = yr.Year
		}
	}
	if len(s.years) > 0 {
		summary.FirstYearSurplus = s.years[0].InvestableSurplus
		summary.FinalInvestmentBalance = s.years[len(s.years)-1].InvestmentBalance
	}
	return summary
}
