// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/coquette-threads/storefront-backend/internal/domain/newsletter"
	"github.com/coquette-threads/storefront-backend/internal/domain/order"
	"github.com/coquette-threads/storefront-backend/internal/domain/product"
	"github.com/coquette-threads/storefront-backend/internal/domain/user"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("Running database auto-migrations...")

	// Dependency order: users and categories before products, products
	// before orders.
	models := []interface{}{
		&user.User{},

		&product.Category{},
		&product.Product{},
		&product.ProductImage{},
		&product.ProductVariant{},
		&product.ProductColor{},

		&order.Order{},
		&order.OrderItem{},

		&newsletter.Subscriber{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes beyond what the model tags declare
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_published_created ON products(published, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_title_lower ON products(LOWER(title))",
		"CREATE INDEX IF NOT EXISTS idx_product_variants_product_size ON product_variants(product_id, size)",
		"CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders(user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_paid_delivered ON orders(is_paid, is_delivered)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SeedInitialData seeds an admin account, the base collections, and a
// handful of sample gowns. Safe to run repeatedly.
func (m *Migration) SeedInitialData() error {
	if err := m.seedAdmin(); err != nil {
		return err
	}
	if err := m.seedCategories(); err != nil {
		return err
	}
	return m.seedProducts()
}

func (m *Migration) seedAdmin() error {
	var count int64
	m.db.Model(&user.User{}).Where("role = ?", user.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	admin := user.User{
		Name:     "Store Admin",
		Email:    "admin@coquettethreads.in",
		Password: string(hash),
		Role:     user.RoleAdmin,
		IsAdmin:  true,
	}

	if err := m.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Println("Seeded admin user admin@coquettethreads.in")
	return nil
}

func (m *Migration) seedCategories() error {
	var count int64
	m.db.Model(&product.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []product.Category{
		{Name: "Evening Gowns", Slug: "evening-gowns"},
		{Name: "Bridal", Slug: "bridal"},
		{Name: "Cocktail Dresses", Slug: "cocktail-dresses"},
		{Name: "Limited Edition", Slug: "limited-edition"},
	}

	if err := m.db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	log.Printf("Seeded %d categories", len(categories))
	return nil
}

func (m *Migration) seedProducts() error {
	var count int64
	m.db.Model(&product.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	var evening product.Category
	if err := m.db.Where("slug = ?", "evening-gowns").First(&evening).Error; err != nil {
		return fmt.Errorf("failed to load seed category: %w", err)
	}

	products := []product.Product{
		{
			Title:            "Marguerite Silk Gown",
			Slug:             "marguerite-silk-gown",
			SKU:              "CT-GWN-001",
			ShortDescription: "Bias-cut silk charmeuse with a draped cowl back",
			Price:            12500,
			Fabric:           "Silk charmeuse",
			Silhouette:       "Bias-cut column",
			Embellishments:   "hand-rolled hem",
			Sizes:            "XS,S,M,L",
			Published:        true,
			Categories:       []product.Category{evening},
			Images: []product.ProductImage{
				{URL: "/images/marguerite-hero.jpg", Alt: "Marguerite silk gown", Type: product.ImageTypeHero},
			},
			Variants: []product.ProductVariant{
				{SKU: "CT-GWN-001-S", Size: "S", InventoryQty: 4},
				{SKU: "CT-GWN-001-M", Size: "M", InventoryQty: 6},
			},
		},
		{
			Title:            "Odette Tulle Gown",
			Slug:             "odette-tulle-gown",
			SKU:              "CT-GWN-002",
			ShortDescription: "Layered tulle skirt with a corseted bodice",
			Price:            18900,
			Fabric:           "Tulle, duchess satin",
			Silhouette:       "Ballgown",
			Embellishments:   "beading,corset boning",
			Sizes:            "XS,S,M,L",
			IsMadeToOrder:    true,
			Published:        true,
			Categories:       []product.Category{evening},
			Images: []product.ProductImage{
				{URL: "/images/odette-hero.jpg", Alt: "Odette tulle gown", Type: product.ImageTypeHero},
			},
		},
	}

	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Printf("Seeded %d products", len(products))
	return nil
}
