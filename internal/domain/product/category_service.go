// internal/domain/product/category_service.go
package product

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/pkg/apperror"
)

// CategoryService handles category business logic
type CategoryService struct {
	db     *gorm.DB
	config *config.Config
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB, cfg *config.Config) *CategoryService {
	return &CategoryService{
		db:     db,
		config: cfg,
	}
}

// CategoryCreateRequest represents category creation data
type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

// GetCategories retrieves all categories ordered by name
func (s *CategoryService) GetCategories() ([]Category, error) {
	var categories []Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperror.Internal("failed to retrieve categories", err)
	}
	return categories, nil
}

// GetCategoryBySlug retrieves a single category by slug
func (s *CategoryService) GetCategoryBySlug(slug string) (*Category, error) {
	var category Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("category not found")
		}
		return nil, apperror.Internal("failed to retrieve category", err)
	}
	return &category, nil
}

// CreateCategory creates a new category. The slug defaults to the
// lowercased, hyphenated name.
func (s *CategoryService) CreateCategory(req *CategoryCreateRequest) (*Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperror.Validation("category name is required")
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}

	var existing Category
	if err := s.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, apperror.Conflict(fmt.Sprintf("category with slug %q already exists", slug))
	}

	category := Category{
		Name: req.Name,
		Slug: slug,
	}

	if err := s.db.Create(&category).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperror.Conflict(fmt.Sprintf("category with slug %q already exists", slug))
		}
		return nil, apperror.Internal("failed to create category", err)
	}

	return &category, nil
}
