// internal/domain/order/entity.go
package order

import (
	"time"
)

// PaymentMethod is the fixed set of accepted payment methods
type PaymentMethod string

const (
	PaymentMethodCOD        PaymentMethod = "COD"
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodCard       PaymentMethod = "Card"
	PaymentMethodNetBanking PaymentMethod = "NetBanking"
)

// ValidPaymentMethod reports whether the method is one of the accepted set
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodUPI, PaymentMethodCard, PaymentMethodNetBanking:
		return true
	}
	return false
}

// Order represents a placed order. The lifecycle is
// Created -> Paid -> Delivered with no regression: paid and delivered
// are each set exactly once.
type Order struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	// Financial information, whole rupees
	ItemsPrice    int64 `gorm:"not null" json:"items_price"`
	TaxPrice      int64 `gorm:"not null" json:"tax_price"`
	ShippingPrice int64 `gorm:"not null" json:"shipping_price"`
	TotalPrice    int64 `gorm:"not null" json:"total_price"`

	ShippingAddress Address       `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	PaymentMethod   PaymentMethod `gorm:"not null;size:20" json:"payment_method"`
	PaymentResult   PaymentResult `gorm:"embedded;embeddedPrefix:payment_" json:"payment_result"`

	IsPaid      bool       `gorm:"not null;default:false" json:"is_paid"`
	PaidAt      *time.Time `json:"paid_at"`
	IsDelivered bool       `gorm:"not null;default:false" json:"is_delivered"`
	DeliveredAt *time.Time `json:"delivered_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// OrderItem snapshots a cart line at placement time so later catalog
// edits do not rewrite order history
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     int64     `gorm:"not null" json:"price"` // Unit price snapshot
	Image     string    `gorm:"size:500" json:"image"`
	Size      string    `gorm:"size:20" json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentResult stores the (simulated) gateway confirmation
type PaymentResult struct {
	ProviderID   string `gorm:"size:255" json:"provider_id"`
	Status       string `gorm:"size:50" json:"status"`
	UpdateTime   string `gorm:"size:50" json:"update_time"`
	EmailAddress string `gorm:"size:255" json:"email_address"`
}

// Address represents the shipping address (embedded in Order)
type Address struct {
	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:100" json:"city"`
	PostalCode string `gorm:"size:20" json:"postal_code"`
	Country    string `gorm:"size:100" json:"country"`
}

// TableName overrides
func (Order) TableName() string     { return "orders" }
func (OrderItem) TableName() string { return "order_items" }

// CanMarkPaid reports whether the order may transition to paid.
// Re-paying a paid order is rejected so paidAt is never overwritten.
func (o *Order) CanMarkPaid() bool {
	return !o.IsPaid
}

// CanMarkDelivered reports whether the order may transition to
// delivered. Delivery requires payment first and is set exactly once.
func (o *Order) CanMarkDelivered() bool {
	return o.IsPaid && !o.IsDelivered
}
