package calc

import "github.com/shopspring/decimal"

// SavingsPercent returns the whole-number percentage saved when a product is
// discounted from original to price. Zero when there is no real discount.
func SavingsPercent(original, price decimal.Decimal) int64 {
	if original.LessThanOrEqual(decimal.Zero) || price.GreaterThanOrEqual(original) {
		return 0
	}
	saved := original.Sub(price).Mul(decimal.NewFromInt(100)).Div(original)
	return saved.Round(0).IntPart()
}
