// Package primitives - Request based pricing primitives
package primitives

import "github.com/shopspring/decimal"

// PerMillion bills a request count at a rate per million requests
func PerMillion(count int64, ratePerMillion decimal.Decimal) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(count).Div(decimal.NewFromInt(1_000_000)).Mul(ratePerMillion)
}
