package storefront

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/five82/storefront/internal/catalog"
)

// Receipt describes a simulated order.
type Receipt struct {
	OrderID  uuid.UUID
	Count    int
	Total    decimal.Decimal
	PlacedAt time.Time
	Currency string
}

// Message is the confirmation text shown to the user.
func (r Receipt) Message() string {
	noun := "items"
	if r.Count == 1 {
		noun = "item"
	}
	return fmt.Sprintf("Order placed! %d %s, total %s", r.Count, noun, catalog.FormatPrice(r.Total, r.Currency))
}

// Checkout simulates placing an order for the cart contents and empties the
// cart. With an empty cart it returns false and leaves state untouched.
func (s *Session) Checkout() (Receipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return Receipt{}, false
	}
	receipt := Receipt{
		OrderID:  uuid.New(),
		Count:    s.cart.Count(),
		Total:    s.cart.Total(),
		PlacedAt: s.now(),
		Currency: s.currency,
	}
	lines := s.cart.Len()
	s.cart.Clear()

	s.log.WithFields(logrus.Fields{
		"order_id": receipt.OrderID.String(),
		"lines":    lines,
		"count":    receipt.Count,
		"total":    receipt.Total.StringFixed(2),
	}).Info("order placed")
	return receipt, true
}
