package storefront

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/five82/storefront/internal/cart"
	"github.com/five82/storefront/internal/catalog"
)

// SetCategory selects the category filter. An empty value selects all.
func (s *Session) SetCategory(category string) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = catalog.AllCategories
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
}

// SetQuery sets the free-text search query.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

// Filter returns the current category and query.
func (s *Session) Filter() (category, query string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category, s.query
}

// Visible returns the products matching the current filter, in catalog order.
func (s *Session) Visible() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Filter(s.products, s.category, s.query)
}

// AddToCart adds one unit of the catalog product with id. It reports false
// when no such product is loaded.
func (s *Session) AddToCart(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := catalog.Find(s.products, id)
	if !ok {
		return false
	}
	s.cart.Add(p)
	return true
}

// RemoveFromCart drops the cart line for id.
func (s *Session) RemoveFromCart(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(id)
}

// UpdateQuantity sets the quantity for id; zero or less removes the line.
func (s *Session) UpdateQuantity(id int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(id, quantity)
}

// ClearCart empties the cart.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// CartItems returns a copy of the cart lines in insertion order.
func (s *Session) CartItems() []cart.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Items()
}

// CartCount returns the sum of cart quantities.
func (s *Session) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Count()
}

// CartTotal returns the sum of cart line subtotals.
func (s *Session) CartTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Total()
}
