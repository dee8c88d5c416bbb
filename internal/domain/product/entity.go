// internal/domain/product/entity.go
package product

import (
	"time"
)

// ImageType classifies product imagery placement
type ImageType string

const (
	ImageTypeHero      ImageType = "hero"
	ImageTypeZoom      ImageType = "zoom"
	ImageTypeThumbnail ImageType = "thumbnail"
)

// Product represents a gown in the catalog.
// Prices are whole rupees. Products are hidden from the storefront via
// Published=false; deletion is a hard delete reserved for admins.
type Product struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Title              string     `gorm:"not null;size:255" json:"title"`
	Slug               string     `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	SKU                string     `gorm:"uniqueIndex;not null;size:100" json:"sku"`
	Description        string     `gorm:"type:text" json:"description"` // HTML allowed
	ShortDescription   string     `gorm:"size:500" json:"short_description"`
	Price              int64      `gorm:"not null;check:price >= 0" json:"price"`
	CompareAtPrice     int64      `json:"compare_at_price"`
	Currency           string     `gorm:"size:3;default:'INR'" json:"currency"`
	Fabric             string     `gorm:"size:100" json:"fabric"`
	Silhouette         string     `gorm:"size:100" json:"silhouette"`
	Neckline           string     `gorm:"size:100" json:"neckline"`
	Sleeve             string     `gorm:"size:100" json:"sleeve"`
	Embellishments     string     `gorm:"size:500" json:"embellishments"` // Comma-separated, e.g. "beading,sequins"
	CareInstructions   string     `gorm:"size:500" json:"care_instructions"`
	ProductionLeadTime string     `gorm:"size:100" json:"production_lead_time"`
	Sizes              string     `gorm:"size:255" json:"sizes"` // Comma-separated, e.g. "XS,S,M,L"
	Tags               string     `gorm:"size:500" json:"tags"`  // Comma-separated tags
	IsMadeToOrder      bool       `gorm:"default:false" json:"is_made_to_order"`
	IsLimitedEdition   bool       `gorm:"default:false" json:"is_limited_edition"`
	Published          bool       `gorm:"default:false" json:"published"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Relationships
	Categories []Category       `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	Images     []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
	Variants   []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"variants,omitempty"`
	Colors     []ProductColor   `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"colors,omitempty"`
}

// Category represents a storefront collection
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductImage represents product imagery
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	URL       string    `gorm:"not null;size:500" json:"url"`
	Alt       string    `gorm:"size:255" json:"alt"`
	Type      ImageType `gorm:"size:20;default:'zoom'" json:"type"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductVariant represents a sellable size/color combination with its
// own inventory count
type ProductVariant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	SKU          string    `gorm:"size:100" json:"sku"`
	Size         string    `gorm:"size:20" json:"size"`
	Color        string    `gorm:"size:50" json:"color"`
	Fabric       string    `gorm:"size:100" json:"fabric"`
	InventoryQty int       `gorm:"default:0" json:"inventory_qty"`
	WeightGrams  int       `json:"weight_grams"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductColor represents a color swatch option
type ProductColor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	Name        string    `gorm:"size:50" json:"name"`
	Hex         string    `gorm:"size:7" json:"hex"`
	SwatchImage string    `gorm:"size:500" json:"swatch_image"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides
func (Product) TableName() string        { return "products" }
func (Category) TableName() string       { return "categories" }
func (ProductImage) TableName() string   { return "product_images" }
func (ProductVariant) TableName() string { return "product_variants" }
func (ProductColor) TableName() string   { return "product_colors" }

// VariantForSize returns the variant matching the given size, if any
func (p *Product) VariantForSize(size string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].Size == size {
			return &p.Variants[i]
		}
	}
	return nil
}

// HeroImage returns the URL of the hero image, falling back to the
// first image on record
func (p *Product) HeroImage() string {
	for _, img := range p.Images {
		if img.Type == ImageTypeHero {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}

// GetDiscountPercentage returns the markdown against the compare-at price
func (p *Product) GetDiscountPercentage() int {
	if p.CompareAtPrice > 0 && p.Price < p.CompareAtPrice {
		return int(((p.CompareAtPrice - p.Price) * 100) / p.CompareAtPrice)
	}
	return 0
}
