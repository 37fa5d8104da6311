package catalogapi

import (
	"github.com/shopspring/decimal"

	"github.com/five82/storefront/internal/catalog"
)

// Product mirrors one element of the /products payload.
type Product struct {
	ID          int64   `json:"id" validate:"gt=0"`
	Title       string  `json:"title" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image" validate:"omitempty,uri"`
	Rating      Rating  `json:"rating"`
}

// Rating mirrors the nested rating object.
type Rating struct {
	Rate  float64 `json:"rate" validate:"gte=0,lte=5"`
	Count int     `json:"count" validate:"gte=0"`
}

// ToCatalog converts the wire record into the domain product.
func (p Product) ToCatalog() catalog.Product {
	return catalog.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       decimal.NewFromFloat(p.Price),
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      catalog.Rating{Rate: p.Rating.Rate, Count: p.Rating.Count},
	}
}

// FromCatalog converts a domain product into its wire form.
func FromCatalog(p catalog.Product) Product {
	return Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price.InexactFloat64(),
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      Rating{Rate: p.Rating.Rate, Count: p.Rating.Count},
	}
}

// FromCatalogList converts a product list into wire records.
func FromCatalogList(products []catalog.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromCatalog(p))
	}
	return out
}
