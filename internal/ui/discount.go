package ui

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// Decorative discount bounds, inclusive.
const (
	MinDiscountPercent = 10
	MaxDiscountPercent = 39
)

// Offer is a made-up "was" price shown next to a product. It never feeds the
// cart or checkout.
type Offer struct {
	Percent  int
	Original decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Discount draws a random percentage in [10, 39] and back-computes the
// original price so that price = original * (1 - percent/100), rounded to
// cents. A nil rng uses the global source.
func Discount(rng *rand.Rand, price decimal.Decimal) Offer {
	span := MaxDiscountPercent - MinDiscountPercent + 1
	var pct int
	if rng == nil {
		pct = MinDiscountPercent + rand.IntN(span)
	} else {
		pct = MinDiscountPercent + rng.IntN(span)
	}
	remaining := hundred.Sub(decimal.NewFromInt(int64(pct)))
	return Offer{
		Percent:  pct,
		Original: price.Mul(hundred).Div(remaining).Round(2),
	}
}
