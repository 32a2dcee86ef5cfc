package domain

// Configuration is the complete input file: one base household, the scenario
// variations to simulate against it, and optional tax policy overrides.
type Configuration struct {
	Household Household  `yaml:"household" json:"household"`
	Scenarios []Scenario `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
	TaxPolicy *TaxPolicy `yaml:"tax_policy,omitempty" json:"tax_policy,omitempty"`
	Output    Output     `yaml:"output,omitempty" json:"output,omitempty"`
}

// Output holds reporting preferences.
type Output struct {
	// Format selects a registered formatter by name or alias. Empty means
	// console.
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// ResolvedScenarios returns the configured scenarios, or a single unnamed
// base scenario when the file declares none.
func (c *Configuration) ResolvedScenarios() []Scenario {
	if len(c.Scenarios) == 0 {
		return []Scenario{{Name: "base"}}
	}
	return c.Scenarios
}

// EffectiveTaxPolicy returns the configured tax policy with defaults filled
// in, or the full default policy when the file has no tax_policy block.
func (c *Configuration) EffectiveTaxPolicy() TaxPolicy {
	if c.TaxPolicy == nil {
		return DefaultTaxPolicy()
	}
	policy := *c.TaxPolicy
	policy.Normalize()
	return policy
}
