// internal/domain/product/service_test.go
package product

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Ruffled Tulle Gown", "ruffled-tulle-gown"},
		{"  Odette  ", "odette"},
		{"Glam_Dress", "glam-dress"},
		{"Très Chic!", "trs-chic"},
		{"UPPER case Title", "upper-case-title"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "Slugify(%q)", tt.title)
	}
}

func TestUpdateRequestFieldUpdates(t *testing.T) {
	t.Run("omitted fields leave columns untouched", func(t *testing.T) {
		updates := (&UpdateRequest{}).fieldUpdates()

		assert.Empty(t, updates)
	})

	t.Run("explicit zero values are written", func(t *testing.T) {
		published := false
		price := int64(0)
		req := &UpdateRequest{Published: &published, Price: &price}

		updates := req.fieldUpdates()

		assert.Equal(t, false, updates["published"])
		assert.Equal(t, int64(0), updates["price"])
		assert.NotContains(t, updates, "title")
	})

	t.Run("comma-joined list fields", func(t *testing.T) {
		embellishments := []string{"beading", "sequins"}
		sizes := []string{"S", "M"}
		req := &UpdateRequest{Embellishments: &embellishments, Sizes: &sizes}

		updates := req.fieldUpdates()

		assert.Equal(t, "beading,sequins", updates["embellishments"])
		assert.Equal(t, "S,M", updates["sizes"])
	})
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(fmt.Errorf("create: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, isDuplicateKey(gorm.ErrRecordNotFound))
	assert.False(t, isDuplicateKey(nil))
}

func TestNewPagination(t *testing.T) {
	t.Run("partial last page", func(t *testing.T) {
		p := NewPagination(25, 1, DefaultPageSize)

		assert.Equal(t, 3, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("middle page has both neighbors", func(t *testing.T) {
		p := NewPagination(25, 2, DefaultPageSize)

		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("last page has no next", func(t *testing.T) {
		p := NewPagination(25, 3, DefaultPageSize)

		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("empty result", func(t *testing.T) {
		p := NewPagination(0, 1, DefaultPageSize)

		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("exact multiple of page size", func(t *testing.T) {
		p := NewPagination(24, 2, DefaultPageSize)

		assert.Equal(t, 2, p.TotalPages)
		assert.False(t, p.HasNext)
	})
}
