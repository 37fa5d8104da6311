package catalog

import "github.com/shopspring/decimal"

// fallbackProducts is the bundled dataset shown when the product API is
// unreachable or returns nothing usable.
var fallbackProducts = []Product{
	{
		ID:          1,
		Title:       "Fjallraven Foldsack No. 1 Backpack",
		Price:       decimal.RequireFromString("109.95"),
		Description: "Fits 15 inch laptops. Padded sleeve, roomy main compartment for everyday carry.",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
		Rating:      Rating{Rate: 3.9, Count: 120},
	},
	{
		ID:          2,
		Title:       "Mens Casual Premium Slim Fit T-Shirts",
		Price:       decimal.RequireFromString("22.30"),
		Description: "Slim-fitting style, contrast raglan long sleeve, three-button henley placket.",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/71-3HjGNDUL._AC_SY879._SX._UX._SY._UY_.jpg",
		Rating:      Rating{Rate: 4.1, Count: 259},
	},
	{
		ID:          5,
		Title:       "John Hardy Women's Legends Naga Bracelet",
		Price:       decimal.RequireFromString("695.00"),
		Description: "Gold and silver dragon station chain bracelet inspired by the mythical water dragon.",
		Category:    "jewelery",
		Image:       "https://fakestoreapi.com/img/71pWzhdJNwL._AC_UL640_QL65_ML3_.jpg",
		Rating:      Rating{Rate: 4.6, Count: 400},
	},
	{
		ID:          9,
		Title:       "WD 2TB Elements Portable External Hard Drive",
		Price:       decimal.RequireFromString("64.00"),
		Description: "USB 3.0 and USB 2.0 compatibility, fast data transfers, high capacity.",
		Category:    "electronics",
		Image:       "https://fakestoreapi.com/img/61IBBVJvSDL._AC_SY879_.jpg",
		Rating:      Rating{Rate: 3.3, Count: 203},
	},
	{
		ID:          14,
		Title:       "Samsung 49-Inch Curved Gaming Monitor",
		Price:       decimal.RequireFromString("999.99"),
		Description: "Super ultrawide 32:9 QLED display with 144Hz refresh rate and 1ms response time.",
		Category:    "electronics",
		Image:       "https://fakestoreapi.com/img/81Zt42ioCgL._AC_SX679_.jpg",
		Rating:      Rating{Rate: 2.2, Count: 140},
	},
	{
		ID:          18,
		Title:       "MBJ Women's Solid Short Sleeve Boat Neck V",
		Price:       decimal.RequireFromString("9.85"),
		Description: "Lightweight fabric with great stretch for comfort, ribbed on sleeves and neckline.",
		Category:    "women's clothing",
		Image:       "https://fakestoreapi.com/img/71z3kpMAYsL._AC_UY879_.jpg",
		Rating:      Rating{Rate: 4.7, Count: 130},
	},
	{
		ID:          20,
		Title:       "DANVOUY Womens T Shirt Casual Cotton Short",
		Price:       decimal.RequireFromString("12.99"),
		Description: "95% cotton, 5% spandex. Casual short sleeve tee with letter print.",
		Category:    "women's clothing",
		Image:       "https://fakestoreapi.com/img/61pHAEJ4NML._AC_UX679_.jpg",
		Rating:      Rating{Rate: 3.6, Count: 145},
	},
}

var fallbackCategories = []string{
	"electronics",
	"jewelery",
	"men's clothing",
	"women's clothing",
}

// FallbackProducts returns a fresh copy of the bundled product dataset.
func FallbackProducts() []Product {
	return Clone(fallbackProducts)
}

// FallbackCategories returns a fresh copy of the bundled category list.
func FallbackCategories() []string {
	dup := make([]string, len(fallbackCategories))
	copy(dup, fallbackCategories)
	return dup
}
