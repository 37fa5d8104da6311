// Package catalog holds the product model and the pure derivations over it:
// category/search filtering, featured selection and the bundled fallback data.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AllCategories is the category filter value that matches every product.
const AllCategories = "all"

// Rating is the aggregated customer rating of a product.
type Rating struct {
	Rate  float64 // 0-5
	Count int
}

// Product is a catalog entry. Products are never mutated after load.
type Product struct {
	ID          int64
	Title       string
	Price       decimal.Decimal
	Description string
	Category    string
	Image       string
	Rating      Rating
}

// FormatPrice renders an amount with two decimals behind the currency symbol.
func FormatPrice(amount decimal.Decimal, symbol string) string {
	return fmt.Sprintf("%s%s", symbol, amount.StringFixed(2))
}

// Categories returns the distinct categories of products in first-seen order.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Find returns the product with the given id.
func Find(products []Product, id int64) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Clone returns a copy of products that shares no backing array with the input.
func Clone(products []Product) []Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]Product, len(products))
	copy(dup, products)
	return dup
}
