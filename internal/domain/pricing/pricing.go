// Package pricing computes effective product prices. All functions are
// pure; catalog state is never touched.
package pricing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffectiveUnitPrice applies a percentage discount to a base unit price:
// price × (1 − discount/100), rounded to 2 decimal places. Rounding is
// half-up (away from zero), matching currency conventions rather than
// banker's rounding or truncation.
func EffectiveUnitPrice(price, discountPercentage decimal.Decimal) decimal.Decimal {
	effective := price.Mul(decimal.NewFromInt(1).Sub(discountPercentage.Div(hundred)))

	return effective.Round(2)
}
