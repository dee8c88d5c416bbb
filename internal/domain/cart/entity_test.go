// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionCartAdd(t *testing.T) {
	t.Run("same product and size merges into one line", func(t *testing.T) {
		c := &SessionCart{SessionID: "s1"}

		c.Add(CartItem{ProductID: 1, Size: "M", Price: 4500, Quantity: 1})
		c.Add(CartItem{ProductID: 1, Size: "M", Price: 4500, Quantity: 1})

		assert.Len(t, c.Items, 1)
		assert.Equal(t, 2, c.Items[0].Quantity)
	})

	t.Run("same product in another size is a separate line", func(t *testing.T) {
		c := &SessionCart{SessionID: "s1"}

		c.Add(CartItem{ProductID: 1, Size: "M", Quantity: 1})
		c.Add(CartItem{ProductID: 1, Size: "L", Quantity: 1})

		assert.Len(t, c.Items, 2)
	})

	t.Run("non-positive quantity defaults to one", func(t *testing.T) {
		c := &SessionCart{SessionID: "s1"}

		c.Add(CartItem{ProductID: 2, Size: "S", Quantity: 0})
		c.Add(CartItem{ProductID: 3, Size: "S", Quantity: -4})

		assert.Equal(t, 1, c.Items[0].Quantity)
		assert.Equal(t, 1, c.Items[1].Quantity)
	})
}

func TestSessionCartRemove(t *testing.T) {
	c := &SessionCart{SessionID: "s1"}
	c.Add(CartItem{ProductID: 1, Size: "M", Quantity: 1})
	c.Add(CartItem{ProductID: 1, Size: "L", Quantity: 1})

	assert.True(t, c.Remove(1, "M"))
	assert.Len(t, c.Items, 1)
	assert.Equal(t, "L", c.Items[0].Size)

	assert.False(t, c.Remove(1, "M"), "removing an absent line reports false")
	assert.False(t, c.Remove(99, "L"))
}

func TestSessionCartClear(t *testing.T) {
	c := &SessionCart{SessionID: "s1"}
	c.Add(CartItem{ProductID: 1, Size: "M", Quantity: 2})

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, Totals{}, c.CalculateTotals())
}

func TestCalculateTotals(t *testing.T) {
	c := &SessionCart{SessionID: "s1"}
	c.Add(CartItem{ProductID: 1, Size: "M", Price: 4500, Quantity: 2})
	c.Add(CartItem{ProductID: 2, Size: "S", Price: 7200, Quantity: 1})

	totals := c.CalculateTotals()

	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.Equal(t, int64(16200), totals.SubTotal)
}
