// Package primitives - Centralized pricing math
// Provider calculators declare quantities and rates, not arithmetic.
// All money flows through these primitives as decimal.Decimal.
package primitives

import "github.com/shopspring/decimal"

// HoursPerMonth is the billing month used by hourly rates
const HoursPerMonth = 730

// PricingTier represents a tiered pricing level
type PricingTier struct {
	UpTo     float64         // Upper limit (0 = unlimited)
	UnitRate decimal.Decimal // Rate per unit in this tier
}

// USD converts a table or usage figure into money.
// Use only on inputs; never round-trip money through float64.
func USD(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount)
}

// MustUSD parses a literal rate, panicking on malformed input
func MustUSD(amount string) decimal.Decimal {
	return decimal.RequireFromString(amount)
}

// Cents rounds money to two decimal places
func Cents(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Sum adds amounts
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
