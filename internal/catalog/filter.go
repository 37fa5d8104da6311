package catalog

import (
	"math/rand/v2"
	"strings"
)

// Filter returns the products that belong to category and contain query.
//
// An empty category or AllCategories matches every product. The query is
// trimmed and compared case-insensitively against title, description and
// category. Source order is preserved and the result never aliases products.
func Filter(products []Product, category, query string) []Product {
	category = strings.TrimSpace(category)
	needle := strings.ToLower(strings.TrimSpace(query))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, category) {
			continue
		}
		if !matchesQuery(p, needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesCategory(p Product, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	return p.Category == category
}

// matchesQuery expects needle to be lowercased already.
func matchesQuery(p Product, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

// PickFeatured selects a uniformly random product. A nil rng uses the
// package-level generator.
func PickFeatured(rng *rand.Rand, products []Product) (Product, bool) {
	if len(products) == 0 {
		return Product{}, false
	}
	var idx int
	if rng != nil {
		idx = rng.IntN(len(products))
	} else {
		idx = rand.IntN(len(products))
	}
	return products[idx], true
}
