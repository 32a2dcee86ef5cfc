// print_schedule dumps the raw amortization schedule behind each scenario of
// a configuration, for eyeballing payment splits and the payoff month. With
// no argument it runs the built-in example configuration.
package main

import (
	"fmt"
	"os"

	calc "github.com/rgehrsitz/mpgo/internal/calculation"
	"github.com/rgehrsitz/mpgo/internal/config"
	"github.com/rgehrsitz/mpgo/internal/domain"
)

func main() {
	p := config.NewInputParser()

	var cfg *domain.Configuration
	if len(os.Args) > 1 {
		var err error
		cfg, err = p.LoadFromFile(os.Args[1])
		if err != nil {
			panic(err)
		}
	} else {
		cfg = p.CreateExampleConfiguration()
	}

	policy := cfg.EffectiveTaxPolicy()
	for _, sc := range cfg.ResolvedScenarios() {
		household := sc.Resolve(cfg.Household)
		sim := calc.NewSimulation(&household, policy)
		if err := sim.Run(); err != nil {
			panic(err)
		}

		fmt.Printf("Scenario %s: principal %s, payment %s, %d-year term, %d-year horizon\n",
			sc.Name,
			household.LoanAmount().StringFixed(2),
			sim.MonthlyPayment().StringFixed(2),
			household.MortgageYears,
			household.SimulationYears)

		fmt.Println("Month,Payment,Interest,Principal,Balance")
		for _, m := range sim.Months() {
			if m.Payment.IsZero() {
				// Past payoff or past term, nothing left to print.
				break
			}
			fmt.Printf("%d,%s,%s,%s,%s\n",
				m.Month,
				m.Payment.StringFixed(2),
				m.Interest.StringFixed(2),
				m.Principal.StringFixed(2),
				m.LoanBalance.StringFixed(2))
		}

		fmt.Println("Year,Balance,Interest,Payments,Surplus,Investments")
		for _, yr := range sim.Years() {
			fmt.Printf("%d,%s,%s,%s,%s,%s\n",
				yr.Year,
				yr.LoanBalance.StringFixed(0),
				yr.MortgageInterest.StringFixed(0),
				yr.MortgagePayments.StringFixed(0),
				yr.InvestableSurplus.StringFixed(0),
				yr.InvestmentBalance.StringFixed(0))
		}
		fmt.Println()
	}
}
