// internal/domain/order/service_test.go
package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/coquette-threads/storefront-backend/internal/config"
)

func testPricing() config.PricingConfig {
	return config.PricingConfig{
		Currency:              "INR",
		TaxRatePercent:        18,
		FlatShippingFee:       500,
		FreeShippingThreshold: 5000,
	}
}

func TestComputeTotals(t *testing.T) {
	pricing := testPricing()

	t.Run("above free shipping threshold", func(t *testing.T) {
		totals := ComputeTotals(6000, pricing)

		assert.Equal(t, int64(6000), totals.ItemsPrice)
		assert.Equal(t, int64(0), totals.ShippingPrice)
		assert.Equal(t, int64(1080), totals.TaxPrice)
		assert.Equal(t, int64(7080), totals.TotalPrice)
	})

	t.Run("at threshold still pays shipping", func(t *testing.T) {
		totals := ComputeTotals(5000, pricing)

		assert.Equal(t, int64(500), totals.ShippingPrice)
		assert.Equal(t, int64(900), totals.TaxPrice)
		assert.Equal(t, int64(6400), totals.TotalPrice)
	})

	t.Run("just above threshold ships free", func(t *testing.T) {
		totals := ComputeTotals(5001, pricing)

		assert.Equal(t, int64(0), totals.ShippingPrice)
	})
}

func TestTaxPriceRounding(t *testing.T) {
	pricing := testPricing()

	// 18% of 3 is 0.54, rounds up; 18% of 2 is 0.36, rounds down
	assert.Equal(t, int64(1), TaxPrice(3, pricing))
	assert.Equal(t, int64(0), TaxPrice(2, pricing))
	assert.Equal(t, int64(1800), TaxPrice(10000, pricing))
}

func TestShippingPrice(t *testing.T) {
	pricing := testPricing()

	assert.Equal(t, int64(500), ShippingPrice(4999, pricing))
	assert.Equal(t, int64(500), ShippingPrice(5000, pricing))
	assert.Equal(t, int64(0), ShippingPrice(5001, pricing))
}

func TestValidPaymentMethod(t *testing.T) {
	valid := []PaymentMethod{
		PaymentMethodCOD,
		PaymentMethodUPI,
		PaymentMethodCard,
		PaymentMethodNetBanking,
	}
	for _, m := range valid {
		assert.True(t, ValidPaymentMethod(m), "expected %q to be valid", m)
	}

	assert.False(t, ValidPaymentMethod("PayPal"))
	assert.False(t, ValidPaymentMethod(""))
	assert.False(t, ValidPaymentMethod("cod"))
}

func TestPaymentUpdates(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	confirmation := &PaymentConfirmation{
		ID:           "pay_123",
		Status:       "COMPLETED",
		UpdateTime:   "2026-08-01T10:00:00Z",
		EmailAddress: "amara@example.com",
	}

	updates := paymentUpdates(confirmation, now)

	assert.Equal(t, true, updates["is_paid"])
	assert.Equal(t, now, updates["paid_at"])
	assert.Equal(t, "pay_123", updates["payment_provider_id"])
	assert.Equal(t, "COMPLETED", updates["payment_status"])
	assert.Equal(t, "amara@example.com", updates["payment_email_address"])
}

func TestDeliveryUpdates(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	updates := deliveryUpdates(now)

	assert.Equal(t, true, updates["is_delivered"])
	assert.Equal(t, now, updates["delivered_at"])
	assert.NotContains(t, updates, "is_paid", "delivery must not touch payment columns")
}

func TestOrderStateGuards(t *testing.T) {
	t.Run("unpaid order can be paid but not delivered", func(t *testing.T) {
		o := &Order{}

		assert.True(t, o.CanMarkPaid())
		assert.False(t, o.CanMarkDelivered())
	})

	t.Run("paid order cannot be paid again", func(t *testing.T) {
		o := &Order{IsPaid: true}

		assert.False(t, o.CanMarkPaid())
		assert.True(t, o.CanMarkDelivered())
	})

	t.Run("delivered order cannot be delivered again", func(t *testing.T) {
		o := &Order{IsPaid: true, IsDelivered: true}

		assert.False(t, o.CanMarkDelivered())
	})
}
