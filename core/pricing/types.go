// Package pricing turns a capacity estimate into monthly cost per provider.
// Each provider calculator is a pure function over the estimate and the
// static tables in tiers.go; nothing here performs I/O.
package pricing

import (
	"github.com/shopspring/decimal"

	p "capcost/core/pricing/primitives"
)

// Breakdown splits a monthly total by cost center
type Breakdown struct {
	Compute   decimal.Decimal `json:"compute"`
	Database  decimal.Decimal `json:"database"`
	Storage   decimal.Decimal `json:"storage"`
	Bandwidth decimal.Decimal `json:"bandwidth"`
	Other     decimal.Decimal `json:"other"`
}

// CloudPricing is the monthly cost of one provider
type CloudPricing struct {
	Provider     Provider        `json:"provider"`
	Name         string          `json:"name"`
	Tier         string          `json:"tier"`
	MonthlyTotal decimal.Decimal `json:"monthlyTotal"`
	Breakdown    Breakdown       `json:"breakdown"`
	Notes        []string        `json:"notes"`
}

// Result is the ranked pricing of an estimate
type Result struct {
	// Estimates are sorted ascending by MonthlyTotal
	Estimates           []CloudPricing `json:"estimates"`
	RecommendedProvider Provider       `json:"recommendedProvider"`
	Recommendation      string         `json:"recommendation"`
	Profile             Profile        `json:"profile"`
}

// Cheapest returns the lowest cost provider
func (r *Result) Cheapest() (CloudPricing, bool) {
	if len(r.Estimates) == 0 {
		return CloudPricing{}, false
	}
	return r.Estimates[0], true
}

// Find returns the pricing of one provider
func (r *Result) Find(provider Provider) (CloudPricing, bool) {
	for _, e := range r.Estimates {
		if e.Provider == provider {
			return e, true
		}
	}
	return CloudPricing{}, false
}

// costs holds unrounded cost centers while a calculator works
type costs struct {
	compute, database, storage, bandwidth, other decimal.Decimal
}

// finish rounds every column and the total to cents. The total is summed
// before rounding.
func (c costs) finish(provider Provider, name, tier string, notes []string) CloudPricing {
	total := p.Sum(c.compute, c.database, c.storage, c.bandwidth, c.other)
	return CloudPricing{
		Provider:     provider,
		Name:         name,
		Tier:         tier,
		MonthlyTotal: p.Cents(total),
		Breakdown: Breakdown{
			Compute:   p.Cents(c.compute),
			Database:  p.Cents(c.database),
			Storage:   p.Cents(c.storage),
			Bandwidth: p.Cents(c.bandwidth),
			Other:     p.Cents(c.other),
		},
		Notes: notes,
	}
}
