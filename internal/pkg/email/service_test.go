// internal/pkg/email/service_test.go
package email

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/domain/order"
)

func TestBuildOrderConfirmation(t *testing.T) {
	o := &order.Order{
		ID:            123,
		ItemsPrice:    6000,
		TaxPrice:      1080,
		ShippingPrice: 0,
		TotalPrice:    7080,
		PaymentMethod: order.PaymentMethodUPI,
		ShippingAddress: order.Address{
			Address:    "4 Lavelle Road",
			City:       "Bengaluru",
			PostalCode: "560001",
			Country:    "India",
		},
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Items: []order.OrderItem{
			{Title: "Marguerite Silk Gown", Size: "M", Quantity: 1, Price: 6000},
		},
	}

	msg, err := BuildOrderConfirmation("Amara", "amara@example.com", o, "Coquette Threads")
	require.NoError(t, err)

	assert.Equal(t, []string{"amara@example.com"}, msg.To)
	assert.Equal(t, "Order Confirmation - #123", msg.Subject)
	assert.Equal(t, EmailTypeOrderConfirmation, msg.Type)

	assert.Contains(t, msg.HTMLContent, "Amara")
	assert.Contains(t, msg.HTMLContent, "Marguerite Silk Gown")
	assert.Contains(t, msg.HTMLContent, "7080")
	assert.Contains(t, msg.HTMLContent, "August 1, 2026")
	assert.Contains(t, msg.HTMLContent, "UPI")
}

func TestSendOrderConfirmationDisabledIsNoop(t *testing.T) {
	svc := NewService(&config.Config{})

	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.SendOrderConfirmation(context.Background(), "Amara", "amara@example.com", &order.Order{ID: 1}))
}
