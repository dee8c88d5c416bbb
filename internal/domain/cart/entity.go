// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// SessionCart represents a shopper's cart, stored in Redis keyed by an
// opaque session id. Items are keyed by (product, size): the same gown
// in two sizes is two separate lines.
type SessionCart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem represents one (product, size) selection with a snapshot of
// the product details at the time it was added
type CartItem struct {
	ProductID uint      `json:"product_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Price     int64     `json:"price"`
	Image     string    `json:"image"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of cart lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	SubTotal      int64 `json:"sub_total"`
}

// Add merges the item into the cart: an existing (product, size) line
// has its quantity incremented, otherwise a new line is appended.
func (c *SessionCart) Add(item CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID && c.Items[i].Size == item.Size {
			c.Items[i].Quantity += item.Quantity
			c.UpdatedAt = time.Now().UTC()
			return
		}
	}
	item.AddedAt = time.Now().UTC()
	c.Items = append(c.Items, item)
	c.UpdatedAt = item.AddedAt
}

// Remove deletes the matching (product, size) line. It reports whether
// a line was removed.
func (c *SessionCart) Remove(productID uint, size string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

// Clear empties the cart
func (c *SessionCart) Clear() {
	c.Items = nil
	c.UpdatedAt = time.Now().UTC()
}

// CalculateTotals sums the cart lines
func (c *SessionCart) CalculateTotals() Totals {
	totals := Totals{ItemCount: len(c.Items)}
	for _, item := range c.Items {
		totals.TotalQuantity += item.Quantity
		totals.SubTotal += item.Price * int64(item.Quantity)
	}
	return totals
}
