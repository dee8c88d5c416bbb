// internal/domain/order/service.go
package order

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/domain/product"
	"github.com/coquette-threads/storefront-backend/internal/pkg/apperror"
)

// Service handles order business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// OrderItemInput represents one cart line in a checkout payload
type OrderItemInput struct {
	Product  uint   `json:"product" binding:"required"`
	Title    string `json:"title"`
	Quantity int    `json:"qty" binding:"required"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Size     string `json:"size"`
}

// PlaceOrderRequest represents the checkout payload: the client's cart
// snapshot plus shipping and payment selections. Client-declared totals
// are ignored; everything is recomputed server-side.
type PlaceOrderRequest struct {
	OrderItems      []OrderItemInput `json:"orderItems"`
	ShippingAddress Address          `json:"shippingAddress"`
	PaymentMethod   PaymentMethod    `json:"paymentMethod"`
}

// PaymentConfirmation represents the (simulated) gateway confirmation
// posted to the pay endpoint
type PaymentConfirmation struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

// Totals holds the computed price breakdown for an order
type Totals struct {
	ItemsPrice    int64
	TaxPrice      int64
	ShippingPrice int64
	TotalPrice    int64
}

// ShippingPrice returns the shipping fee for a given items subtotal:
// free above the threshold, a flat fee otherwise.
func ShippingPrice(itemsPrice int64, pricing config.PricingConfig) int64 {
	if itemsPrice > pricing.FreeShippingThreshold {
		return 0
	}
	return pricing.FlatShippingFee
}

// TaxPrice returns the tax on a given items subtotal, rounded to the
// nearest whole rupee.
func TaxPrice(itemsPrice int64, pricing config.PricingConfig) int64 {
	return (itemsPrice*pricing.TaxRatePercent + 50) / 100
}

// ComputeTotals derives the full price breakdown from an items subtotal
func ComputeTotals(itemsPrice int64, pricing config.PricingConfig) Totals {
	tax := TaxPrice(itemsPrice, pricing)
	shipping := ShippingPrice(itemsPrice, pricing)
	return Totals{
		ItemsPrice:    itemsPrice,
		TaxPrice:      tax,
		ShippingPrice: shipping,
		TotalPrice:    itemsPrice + tax + shipping,
	}
}

// Place converts a cart snapshot into a persisted order. Unit prices
// are validated against the catalog, totals are recomputed
// server-side, and variant inventory is decremented in the same
// transaction. The order starts unpaid and undelivered.
func (s *Service) Place(userID uint, req *PlaceOrderRequest) (*Order, error) {
	if len(req.OrderItems) == 0 {
		return nil, apperror.Validation("cannot place an order with an empty cart")
	}
	if req.PaymentMethod == "" {
		return nil, apperror.Validation("payment method is required")
	}
	if !ValidPaymentMethod(req.PaymentMethod) {
		return nil, apperror.Validation(fmt.Sprintf("unsupported payment method %q", req.PaymentMethod))
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var itemsPrice int64
	items := make([]OrderItem, 0, len(req.OrderItems))

	for _, line := range req.OrderItems {
		if line.Quantity <= 0 {
			tx.Rollback()
			return nil, apperror.Validation("item quantity must be positive")
		}

		var p product.Product
		if err := tx.Preload("Variants").Preload("Images").
			Where("id = ? AND published = ?", line.Product, true).
			First(&p).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.Validation(fmt.Sprintf("product %d is not available", line.Product))
			}
			return nil, apperror.Internal("failed to load product", err)
		}

		// The catalog price is authoritative. A stale or tampered
		// client price fails the whole order.
		if line.Price != 0 && line.Price != p.Price {
			tx.Rollback()
			return nil, apperror.Validation(fmt.Sprintf(
				"price for %q has changed, please refresh your cart", p.Title))
		}

		if err := s.reserveInventory(tx, &p, line.Size, line.Quantity); err != nil {
			tx.Rollback()
			return nil, err
		}

		itemsPrice += p.Price * int64(line.Quantity)
		items = append(items, OrderItem{
			ProductID: p.ID,
			Title:     p.Title,
			Quantity:  line.Quantity,
			Price:     p.Price,
			Image:     p.HeroImage(),
			Size:      line.Size,
		})
	}

	totals := ComputeTotals(itemsPrice, s.config.Pricing)

	order := Order{
		UserID:          userID,
		ItemsPrice:      totals.ItemsPrice,
		TaxPrice:        totals.TaxPrice,
		ShippingPrice:   totals.ShippingPrice,
		TotalPrice:      totals.TotalPrice,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Items:           items,
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, apperror.Internal("failed to create order", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperror.Internal("failed to commit order transaction", err)
	}

	return s.Get(order.ID)
}

// reserveInventory decrements the matching (product, size) variant
// inside the transaction. Made-to-order gowns carry no stock to
// reserve; products without variants are treated the same way.
func (s *Service) reserveInventory(tx *gorm.DB, p *product.Product, size string, quantity int) error {
	if p.IsMadeToOrder {
		return nil
	}

	variant := p.VariantForSize(size)
	if variant == nil {
		return nil
	}

	if variant.InventoryQty < quantity {
		return apperror.Validation(fmt.Sprintf(
			"insufficient stock for %q in size %s: %d available, %d requested",
			p.Title, size, variant.InventoryQty, quantity))
	}

	result := tx.Model(&product.ProductVariant{}).
		Where("id = ? AND inventory_qty >= ?", variant.ID, quantity).
		UpdateColumn("inventory_qty", gorm.Expr("inventory_qty - ?", quantity))
	if result.Error != nil {
		return apperror.Internal("failed to reserve inventory", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.Validation(fmt.Sprintf(
			"insufficient stock for %q in size %s", p.Title, size))
	}
	return nil
}

// Get retrieves a single order by id
func (s *Service) Get(id uint) (*Order, error) {
	var order Order
	if err := s.db.Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("order not found")
		}
		return nil, apperror.Internal("failed to retrieve order", err)
	}
	return &order, nil
}

// paymentUpdates builds the column updates for the paid transition
func paymentUpdates(confirmation *PaymentConfirmation, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"is_paid":               true,
		"paid_at":               now,
		"payment_provider_id":   confirmation.ID,
		"payment_status":        confirmation.Status,
		"payment_update_time":   confirmation.UpdateTime,
		"payment_email_address": confirmation.EmailAddress,
	}
}

// deliveryUpdates builds the column updates for the delivered transition
func deliveryUpdates(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"is_delivered": true,
		"delivered_at": now,
	}
}

// MarkPaid records the payment confirmation. The update is conditional
// on is_paid being false, so concurrent pay calls write the paid
// timestamp exactly once; the loser gets a conflict.
func (s *Service) MarkPaid(orderID uint, confirmation *PaymentConfirmation) (*Order, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	if !order.CanMarkPaid() {
		return nil, apperror.Conflict("order is already paid")
	}

	result := s.db.Model(&Order{}).
		Where("id = ? AND is_paid = ?", orderID, false).
		Updates(paymentUpdates(confirmation, time.Now().UTC()))
	if result.Error != nil {
		return nil, apperror.Internal("failed to mark order paid", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperror.Conflict("order is already paid")
	}

	return s.Get(orderID)
}

// MarkDelivered records delivery. Requires the order to be paid and not
// yet delivered; the conditional update keeps concurrent calls from
// both succeeding.
func (s *Service) MarkDelivered(orderID uint) (*Order, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	if order.IsDelivered {
		return nil, apperror.Conflict("order is already delivered")
	}
	if !order.CanMarkDelivered() {
		return nil, apperror.Conflict("order must be paid before it can be delivered")
	}

	result := s.db.Model(&Order{}).
		Where("id = ? AND is_paid = ? AND is_delivered = ?", orderID, true, false).
		Updates(deliveryUpdates(time.Now().UTC()))
	if result.Error != nil {
		return nil, apperror.Internal("failed to mark order delivered", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperror.Conflict("order is already delivered")
	}

	return s.Get(orderID)
}

// ListForUser retrieves a user's orders, newest first
func (s *Service) ListForUser(userID uint) ([]Order, error) {
	var orders []Order
	if err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, apperror.Internal("failed to retrieve orders", err)
	}
	return orders, nil
}

// ListAll retrieves every order, newest first
func (s *Service) ListAll() ([]Order, error) {
	var orders []Order
	if err := s.db.Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, apperror.Internal("failed to retrieve orders", err)
	}
	return orders, nil
}
