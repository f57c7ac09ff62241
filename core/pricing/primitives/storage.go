// Package primitives - Storage and capacity pricing primitives
// GB-months, GB-hours, proportional splits
package primitives

import "github.com/shopspring/decimal"

// PerUnit bills quantity (GB-months, GB of egress) at a flat rate
func PerUnit(quantity float64, rate decimal.Decimal) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return USD(quantity).Mul(rate)
}

// Hourly bills units (GB of RAM, vCPUs) held for a full month at an hourly rate
func Hourly(units float64, ratePerHour decimal.Decimal) decimal.Decimal {
	if units <= 0 {
		return decimal.Zero
	}
	return USD(units).Mul(decimal.NewFromInt(HoursPerMonth)).Mul(ratePerHour)
}

// Share returns fraction of amount
func Share(amount decimal.Decimal, fraction float64) decimal.Decimal {
	return amount.Mul(USD(fraction))
}
