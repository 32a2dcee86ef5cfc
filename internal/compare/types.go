package compare

import (
	"fmt"

	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// SweepResult is one scenario's headline metrics plus its deltas against the
// base scenario.
type SweepResult struct {
	ScenarioName string                  `json:"scenario_name"`
	Summary      *domain.ScenarioSummary `json:"summary,omitempty"`

	// Headline metrics
	MonthlyPayment         decimal.Decimal `json:"monthly_payment"`
	PayoffYear             int             `json:"payoff_year"`
	TotalInterestPaid      decimal.Decimal `json:"total_interest_paid"`
	LifetimeTax            decimal.Decimal `json:"lifetime_tax"`
	FirstYearSurplus       decimal.Decimal `json:"first_year_surplus"`
	FinalInvestmentBalance decimal.Decimal `json:"final_investment_balance"`

	// Comparison to base. PayoffYearDiff is only meaningful when both
	// scenarios retire the loan inside the horizon; it stays zero otherwise.
	BalanceDiffFromBase  decimal.Decimal `json:"balance_diff_from_base"`
	BalancePctFromBase   decimal.Decimal `json:"balance_pct_from_base"`
	InterestDiffFromBase decimal.Decimal `json:"interest_diff_from_base"`
	TaxDiffFromBase      decimal.Decimal `json:"tax_diff_from_base"`
	PayoffYearDiff       int             `json:"payoff_year_diff"`
	SurplusDiffFromBase  decimal.Decimal `json:"surplus_diff_from_base"`
}

// SweepSet is the complete result of one sweep: the base scenario's metrics,
// every alternative in configuration order, and derived findings.
type SweepSet struct {
	BaseScenarioName   string        `json:"base_scenario_name"`
	BaseResult         *SweepResult  `json:"base_result"`
	AlternativeResults []SweepResult `json:"alternative_results"`
	Findings           []string      `json:"findings"`
	ConfigPath         string        `json:"config_path,omitempty"`
}

// Results returns the base result followed by the alternatives, for renderers
// that want a single ordered list.
func (ss *SweepSet) Results() []SweepResult {
	results := make([]SweepResult, 0, len(ss.AlternativeResults)+1)
	if ss.BaseResult != nil {
		results = append(results, *ss.BaseResult)
	}
	results = append(results, ss.AlternativeResults...)
	return results
}

// MetricsCalculator extracts headline metrics from scenario summaries.
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator.
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the headline metrics for a scenario summary.
func (mc *MetricsCalculator) CalculateMetrics(summary *domain.ScenarioSummary) SweepResult {
	return SweepResult{
		ScenarioName:           summary.Name,
		Summary:                summary,
		MonthlyPayment:         summary.MonthlyPayment,
		PayoffYear:             summary.PayoffYear,
		TotalInterestPaid:      summary.TotalInterestPaid,
		LifetimeTax:            summary.TotalFederalTax.Add(summary.TotalStateTax),
		FirstYearSurplus:       summary.FirstYearSurplus,
		FinalInvestmentBalance: summary.FinalInvestmentBalance,
	}
}

// CalculateComparison fills in a scenario's deltas against the base result.
func (mc *MetricsCalculator) CalculateComparison(result, base SweepResult) SweepResult {
	result.BalanceDiffFromBase = result.FinalInvestmentBalance.Sub(base.FinalInvestmentBalance)

	if !base.FinalInvestmentBalance.IsZero() {
		result.BalancePctFromBase = result.BalanceDiffFromBase.
			Div(base.FinalInvestmentBalance).
			Mul(decimal.NewFromInt(100))
	}

	result.InterestDiffFromBase = result.TotalInterestPaid.Sub(base.TotalInterestPaid)
	result.TaxDiffFromBase = result.LifetimeTax.Sub(base.LifetimeTax)
	result.SurplusDiffFromBase = result.FirstYearSurplus.Sub(base.FirstYearSurplus)

	if result.PayoffYear > 0 && base.PayoffYear > 0 {
		result.PayoffYearDiff = result.PayoffYear - base.PayoffYear
	}

	return result
}

// GenerateFindings derives plain-language observations from a sweep.
func GenerateFindings(sweepSet *SweepSet) []string {
	findings := []string{}

	if sweepSet.BaseResult == nil || len(sweepSet.AlternativeResults) == 0 {
		return findings
	}

	// Find the highest final investment balance
	bestBalance := sweepSet.BaseResult
	for i := range sweepSet.AlternativeResults {
		if sweepSet.AlternativeResults[i].FinalInvestmentBalance.GreaterThan(bestBalance.FinalInvestmentBalance) {
			bestBalance = &sweepSet.AlternativeResults[i]
		}
	}

	if bestBalance != sweepSet.BaseResult {
		balanceDiff := bestBalance.FinalInvestmentBalance.Sub(sweepSet.BaseResult.FinalInvestmentBalance)
		findings = append(findings,
			"Highest Balance: "+bestBalance.ScenarioName+" finishes the horizon with $"+balanceDiff.StringFixed(0)+
				" more invested than "+sweepSet.BaseScenarioName)
	}

	// Find the lowest combined tax burden
	lowestTax := sweepSet.BaseResult
	for i := range sweepSet.AlternativeResults {
		if sweepSet.AlternativeResults[i].LifetimeTax.LessThan(lowestTax.LifetimeTax) {
			lowestTax = &sweepSet.AlternativeResults[i]
		}
	}

	if lowestTax != sweepSet.BaseResult {
		taxSavings := sweepSet.BaseResult.LifetimeTax.Sub(lowestTax.LifetimeTax)
		findings = append(findings,
			"Lowest Taxes: "+lowestTax.ScenarioName+" saves $"+taxSavings.StringFixed(0)+
				" in combined federal and state tax")
	}

	// Find the earliest payoff among scenarios that retire the loan at all
	earliestPayoff := sweepSet.BaseResult
	for i := range sweepSet.AlternativeResults {
		alt := &sweepSet.AlternativeResults[i]
		if alt.PayoffYear == 0 {
			continue
		}
		if earliestPayoff.PayoffYear == 0 || alt.PayoffYear < earliestPayoff.PayoffYear {
			earliestPayoff = alt
		}
	}

	if earliestPayoff != sweepSet.BaseResult && earliestPayoff.PayoffYear > 0 {
		if sweepSet.BaseResult.PayoffYear == 0 {
			findings = append(findings,
				"Earliest Payoff: "+earliestPayoff.ScenarioName+" retires the loan in year "+
					fmt.Sprintf("%d", earliestPayoff.PayoffYear)+"; "+sweepSet.BaseScenarioName+
					" never does inside the horizon")
		} else {
			yearsSooner := sweepSet.BaseResult.PayoffYear - earliestPayoff.PayoffYear
			findings = append(findings,
				"Earliest Payoff: "+earliestPayoff.ScenarioName+" retires the loan "+
					fmt.Sprintf("%d years", yearsSooner)+" sooner than "+sweepSet.BaseScenarioName)
		}
	}

	return findings
}
