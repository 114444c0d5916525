// Package capmath computes cap-space derivations for a company's spend.
package capmath

// Default cap configuration constants.
const (
	defaultCapBudget          = 50_000_000
	defaultLuxuryTaxThreshold = 1.0 // share of budget at which the tax flag trips
	percentScale              = 100
)

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithDefaultBudget sets the budget applied to companies that disclose none.
func WithDefaultBudget(budget float64) Option {
	return func(c *Calculator) {
		if budget > 0 {
			c.defaultBudget = budget
		}
	}
}

// WithLuxuryTaxThreshold sets the spend/budget ratio above which a company
// is flagged. 1.0 flags anything over the budget itself.
func WithLuxuryTaxThreshold(threshold float64) Option {
	return func(c *Calculator) {
		if threshold > 0 {
			c.luxuryTaxThreshold = threshold
		}
	}
}

// CapInfo is the full derivation for one company and year.
type CapInfo struct {
	BudgetUSD      float64 `json:"budget_usd"`
	SpendUSD       float64 `json:"spend_usd"`
	CapSpaceUSD    float64 `json:"cap_space_usd"`
	UtilizationPct float64 `json:"utilization_pct"`
	OverBudget     bool    `json:"over_budget"`
	LuxuryTax      bool    `json:"luxury_tax"`
}

// Calculator derives cap figures using configured defaults.
type Calculator struct {
	defaultBudget      float64
	luxuryTaxThreshold float64
}

// New creates a Calculator with configuration options.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		defaultBudget:      defaultCapBudget,
		luxuryTaxThreshold: defaultLuxuryTaxThreshold,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Budget resolves a disclosed budget, falling back to the default when the
// manifest carries none.
func (c *Calculator) Budget(disclosed float64) float64 {
	if disclosed > 0 {
		return disclosed
	}
	return c.defaultBudget
}

// Derive computes the cap figures for a company. A company with zero spend
// reports CapSpaceUSD equal to its full budget.
func (c *Calculator) Derive(disclosedBudget, spend float64) CapInfo {
	budget := c.Budget(disclosedBudget)
	info := CapInfo{
		BudgetUSD:   budget,
		SpendUSD:    spend,
		CapSpaceUSD: budget - spend,
		OverBudget:  spend > budget,
	}
	if budget > 0 {
		info.UtilizationPct = spend / budget * percentScale
		info.LuxuryTax = spend > budget*c.luxuryTaxThreshold
	}
	return info
}

// CapHitPct returns one contract's share of the company budget in percent.
func (c *Calculator) CapHitPct(disclosedBudget, compensation float64) float64 {
	budget := c.Budget(disclosedBudget)
	if budget <= 0 {
		return 0
	}
	return compensation / budget * percentScale
}
