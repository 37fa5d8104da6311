package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/storefront/internal/catalog"
)

func product(id int64, price string) catalog.Product {
	return catalog.Product{ID: id, Title: "p", Price: decimal.RequireFromString(price)}
}

func TestAdd_SameProductTwiceIncrementsSingleLine(t *testing.T) {
	var c Cart
	c.Add(product(1, "10"))
	c.Add(product(1, "10"))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, c.Count())
}

func TestAdd_AppendsNewLinesInOrder(t *testing.T) {
	var c Cart
	c.Add(product(3, "1"))
	c.Add(product(1, "1"))
	c.Add(product(3, "1"))
	c.Add(product(2, "1"))

	var got []int64
	for _, it := range c.Items() {
		got = append(got, it.ID)
	}
	assert.Equal(t, []int64{3, 1, 2}, got)
	assert.Equal(t, 2, c.Quantity(3))
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("sets exact quantity", func(t *testing.T) {
		var c Cart
		c.Add(product(1, "5"))
		c.UpdateQuantity(1, 7)
		assert.Equal(t, 7, c.Quantity(1))
	})

	for _, qty := range []int{0, -5} {
		t.Run("non-positive removes", func(t *testing.T) {
			var c Cart
			c.Add(product(1, "5"))
			c.Add(product(2, "5"))
			c.UpdateQuantity(1, qty)
			assert.Equal(t, 0, c.Quantity(1))
			assert.Equal(t, 1, c.Len())
		})
	}

	t.Run("unknown id ignored", func(t *testing.T) {
		var c Cart
		c.Add(product(1, "5"))
		c.UpdateQuantity(99, 3)
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, 0, c.Quantity(99))
	})
}

func TestRemoveAndClear(t *testing.T) {
	var c Cart
	c.Add(product(1, "5"))
	c.Add(product(2, "5"))

	assert.False(t, c.Remove(42))
	assert.True(t, c.Remove(1))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.Items())
	assert.True(t, c.Total().IsZero())
}

func TestAggregates(t *testing.T) {
	var c Cart
	c.Add(product(1, "10"))
	c.Add(product(1, "10"))
	c.Add(product(2, "5"))

	assert.Equal(t, 3, c.Count())
	assert.Equal(t, "25.00", c.Total().StringFixed(2))

	c.Add(product(3, "0.10"))
	c.Add(product(4, "0.20"))
	assert.True(t, c.Total().Equal(decimal.RequireFromString("25.30")), "decimal totals must not drift")
}

func TestItemsSnapshotIsStable(t *testing.T) {
	var c Cart
	c.Add(product(1, "10"))
	snap := c.Items()

	c.Add(product(1, "10"))
	c.UpdateQuantity(1, 9)
	assert.Equal(t, 1, snap[0].Quantity, "earlier snapshot must not observe later mutations")

	snap[0].Quantity = 100
	assert.Equal(t, 9, c.Quantity(1), "mutating a snapshot must not affect the cart")
}

func TestItemSubtotal(t *testing.T) {
	it := Item{Product: product(1, "2.50"), Quantity: 3}
	assert.Equal(t, "7.50", it.Subtotal().StringFixed(2))
}
