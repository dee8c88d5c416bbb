// internal/domain/product/entity_test.go
package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantForSize(t *testing.T) {
	p := &Product{
		Variants: []ProductVariant{
			{Size: "S", InventoryQty: 1},
			{Size: "M", InventoryQty: 3},
		},
	}

	m := p.VariantForSize("M")
	assert.NotNil(t, m)
	assert.Equal(t, 3, m.InventoryQty)

	assert.Nil(t, p.VariantForSize("XL"))
	assert.Nil(t, (&Product{}).VariantForSize("M"))
}

func TestHeroImage(t *testing.T) {
	t.Run("prefers the hero image", func(t *testing.T) {
		p := &Product{
			Images: []ProductImage{
				{URL: "zoom.jpg", Type: ImageTypeZoom},
				{URL: "hero.jpg", Type: ImageTypeHero},
			},
		}

		assert.Equal(t, "hero.jpg", p.HeroImage())
	})

	t.Run("falls back to the first image", func(t *testing.T) {
		p := &Product{
			Images: []ProductImage{
				{URL: "zoom.jpg", Type: ImageTypeZoom},
			},
		}

		assert.Equal(t, "zoom.jpg", p.HeroImage())
	})

	t.Run("empty without images", func(t *testing.T) {
		assert.Equal(t, "", (&Product{}).HeroImage())
	})
}

func TestGetDiscountPercentage(t *testing.T) {
	p := &Product{Price: 8000, CompareAtPrice: 10000}
	assert.Equal(t, 20, p.GetDiscountPercentage())

	noDiscount := &Product{Price: 8000}
	assert.Equal(t, 0, noDiscount.GetDiscountPercentage())
}
