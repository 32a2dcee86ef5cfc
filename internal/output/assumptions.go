package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
// Future: could be loaded from configuration or generated dynamically.
var DefaultAssumptions = []string{
	"Fixed-rate mortgage, standard annuity amortization, monthly compounding",
	"Federal brackets: 2023 married-filing-jointly, indexed with household inflation",
	"State tax: flat 4.95% on income less two filer exemptions",
	"SALT deduction capped at $10,000 (inflation-indexed unless configured flat)",
	"Mortgage interest deductible up to a $750,000 balance cap",
	"Year-end surplus invested as a lump sum; returns compound annually",
}
