// Package primitives - Tiered pricing primitives
// Handles included allowances and tiered overage
package primitives

import "github.com/shopspring/decimal"

// CalculateTieredCost computes the cost of quantity across ordered tiers
func CalculateTieredCost(quantity float64, tiers []PricingTier) decimal.Decimal {
	if quantity <= 0 || len(tiers) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	remaining := quantity
	previousLimit := 0.0

	for _, tier := range tiers {
		if remaining <= 0 {
			break
		}

		if tier.UpTo == 0 {
			// Unlimited tier - all remaining goes here
			total = total.Add(tier.UnitRate.Mul(USD(remaining)))
			remaining = 0
		} else {
			usageInTier := min(remaining, tier.UpTo-previousLimit)
			total = total.Add(tier.UnitRate.Mul(USD(usageInTier)))
			remaining -= usageInTier
			previousLimit = tier.UpTo
		}
	}

	return total
}

// Overage returns the part of quantity above the included allowance
func Overage(quantity, included float64) float64 {
	if quantity <= included {
		return 0
	}
	return quantity - included
}

// FreeTier bills quantity above a free allowance at rate
func FreeTier(quantity, free float64, rate decimal.Decimal) decimal.Decimal {
	return CalculateTieredCost(quantity, []PricingTier{
		{UpTo: free, UnitRate: decimal.Zero},
		{UpTo: 0, UnitRate: rate},
	})
}
