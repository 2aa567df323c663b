package course

import (
	"strings"

	"github.com/shopspring/decimal"
)

const currencySign = "₽"

// FormatPrice renders whole roubles with space-grouped thousands, e.g.
// "12 000 ₽". Kopecks are rounded away.
func FormatPrice(d decimal.Decimal) string {
	digits := d.Round(0).Abs().StringFixed(0)

	var b strings.Builder
	if d.Round(0).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteString(" " + currencySign)
	return b.String()
}

// DiscountPercent is how much cheaper price is than original, rounded to a
// whole percent. Zero when there is no discount.
func DiscountPercent(price decimal.Decimal, original *decimal.Decimal) int {
	if original == nil || !original.IsPositive() || !price.LessThan(*original) {
		return 0
	}
	pct := decimal.NewFromInt(1).Sub(price.Div(*original)).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart())
}
