// Package cart implements the shopping cart: an ordered list of products with
// quantities and the count/total derived from it.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/five82/storefront/internal/catalog"
)

// Item is a product in the cart. Quantity is always >= 1.
type Item struct {
	catalog.Product
	Quantity int
}

// Subtotal returns price x quantity for the line.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds at most one Item per product id in insertion order.
//
// Every mutation installs a new backing slice, so a slice returned by Items
// is never modified afterwards. The zero value is an empty cart.
type Cart struct {
	items []Item
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Item {
	if len(c.items) == 0 {
		return nil
	}
	dup := make([]Item, len(c.items))
	copy(dup, c.items)
	return dup
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Quantity returns the quantity stored for id, or zero.
func (c *Cart) Quantity(id int64) int {
	if idx := c.index(id); idx >= 0 {
		return c.items[idx].Quantity
	}
	return 0
}

// Add increments the line for p or appends a new line with quantity 1.
func (c *Cart) Add(p catalog.Product) {
	next := c.Items()
	if idx := c.index(p.ID); idx >= 0 {
		next[idx].Quantity++
	} else {
		next = append(next, Item{Product: p, Quantity: 1})
	}
	c.items = next
}

// Remove drops the line for id. It reports whether a line was removed.
func (c *Cart) Remove(id int64) bool {
	idx := c.index(id)
	if idx < 0 {
		return false
	}
	next := make([]Item, 0, len(c.items)-1)
	next = append(next, c.items[:idx]...)
	next = append(next, c.items[idx+1:]...)
	c.items = next
	return true
}

// UpdateQuantity sets the quantity for id. A quantity <= 0 removes the line.
// Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id int64, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	idx := c.index(id)
	if idx < 0 {
		return
	}
	next := c.Items()
	next[idx].Quantity = quantity
	c.items = next
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Count is the sum of all quantities.
func (c *Cart) Count() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// Total is the sum of all line subtotals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (c *Cart) index(id int64) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
