// internal/domain/product/service.go
package product

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/pkg/apperror"
)

// DefaultPageSize is the storefront catalog page size
const DefaultPageSize = 12

// Service handles product business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ListRequest represents catalog list query parameters
type ListRequest struct {
	Page     int    `form:"pageNumber,default=1"`
	Limit    int    `form:"limit"`
	Keyword  string `form:"keyword"`
	Category string `form:"category"` // Category id or slug

	// Set by the handler for admin callers; never bound from the query
	IncludeUnpublished bool `form:"-"`
}

// ImageInput represents an image in create/update payloads
type ImageInput struct {
	URL  string    `json:"url" binding:"required"`
	Alt  string    `json:"alt"`
	Type ImageType `json:"type"`
}

// VariantInput represents a variant in create/update payloads
type VariantInput struct {
	SKU          string `json:"sku"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	Fabric       string `json:"fabric"`
	InventoryQty int    `json:"inventory_qty"`
	WeightGrams  int    `json:"weight_grams"`
}

// ColorInput represents a color swatch in create/update payloads
type ColorInput struct {
	Name        string `json:"name"`
	Hex         string `json:"hex"`
	SwatchImage string `json:"swatch_image"`
}

// CreateRequest represents product creation data
type CreateRequest struct {
	Title              string         `json:"title" binding:"required"`
	Slug               string         `json:"slug"`
	SKU                string         `json:"sku" binding:"required"`
	Description        string         `json:"description"`
	ShortDescription   string         `json:"short_description"`
	Price              int64          `json:"price"`
	CompareAtPrice     int64          `json:"compare_at_price"`
	Fabric             string         `json:"fabric"`
	Silhouette         string         `json:"silhouette"`
	Neckline           string         `json:"neckline"`
	Sleeve             string         `json:"sleeve"`
	Embellishments     []string       `json:"embellishments"`
	CareInstructions   string         `json:"care_instructions"`
	ProductionLeadTime string         `json:"production_lead_time"`
	Sizes              []string       `json:"sizes"`
	Tags               []string       `json:"tags"`
	IsMadeToOrder      bool           `json:"is_made_to_order"`
	IsLimitedEdition   bool           `json:"is_limited_edition"`
	Published          bool           `json:"published"`
	CategoryIDs        []uint         `json:"category_ids"`
	Images             []ImageInput   `json:"images"`
	Variants           []VariantInput `json:"variants"`
	Colors             []ColorInput   `json:"colors"`
}

// UpdateRequest represents product update data. Pointer fields
// distinguish "absent" from explicit zero values, so published=false or
// price=0 are honored rather than silently ignored.
type UpdateRequest struct {
	Title              *string         `json:"title"`
	Slug               *string         `json:"slug"`
	SKU                *string         `json:"sku"`
	Description        *string         `json:"description"`
	ShortDescription   *string         `json:"short_description"`
	Price              *int64          `json:"price"`
	CompareAtPrice     *int64          `json:"compare_at_price"`
	Fabric             *string         `json:"fabric"`
	Silhouette         *string         `json:"silhouette"`
	Neckline           *string         `json:"neckline"`
	Sleeve             *string         `json:"sleeve"`
	Embellishments     *[]string       `json:"embellishments"`
	CareInstructions   *string         `json:"care_instructions"`
	ProductionLeadTime *string         `json:"production_lead_time"`
	Sizes              *[]string       `json:"sizes"`
	Tags               *[]string       `json:"tags"`
	IsMadeToOrder      *bool           `json:"is_made_to_order"`
	IsLimitedEdition   *bool           `json:"is_limited_edition"`
	Published          *bool           `json:"published"`
	CategoryIDs        *[]uint         `json:"category_ids"`
	Images             *[]ImageInput   `json:"images"`
	Variants           *[]VariantInput `json:"variants"`
	Colors             *[]ColorInput   `json:"colors"`
}

// fieldUpdates converts the set pointer fields into a column update
// map. Explicit zero values (false, 0, empty slice) are written; nil
// pointers leave the column untouched.
func (r *UpdateRequest) fieldUpdates() map[string]interface{} {
	updates := make(map[string]interface{})

	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Slug != nil {
		updates["slug"] = *r.Slug
	}
	if r.SKU != nil {
		updates["sku"] = *r.SKU
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.ShortDescription != nil {
		updates["short_description"] = *r.ShortDescription
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.CompareAtPrice != nil {
		updates["compare_at_price"] = *r.CompareAtPrice
	}
	if r.Fabric != nil {
		updates["fabric"] = *r.Fabric
	}
	if r.Silhouette != nil {
		updates["silhouette"] = *r.Silhouette
	}
	if r.Neckline != nil {
		updates["neckline"] = *r.Neckline
	}
	if r.Sleeve != nil {
		updates["sleeve"] = *r.Sleeve
	}
	if r.Embellishments != nil {
		updates["embellishments"] = strings.Join(*r.Embellishments, ",")
	}
	if r.CareInstructions != nil {
		updates["care_instructions"] = *r.CareInstructions
	}
	if r.ProductionLeadTime != nil {
		updates["production_lead_time"] = *r.ProductionLeadTime
	}
	if r.Sizes != nil {
		updates["sizes"] = strings.Join(*r.Sizes, ",")
	}
	if r.Tags != nil {
		updates["tags"] = strings.Join(*r.Tags, ",")
	}
	if r.IsMadeToOrder != nil {
		updates["is_made_to_order"] = *r.IsMadeToOrder
	}
	if r.IsLimitedEdition != nil {
		updates["is_limited_edition"] = *r.IsLimitedEdition
	}
	if r.Published != nil {
		updates["published"] = *r.Published
	}

	return updates
}

// ListResponse represents catalog response with pagination
type ListResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewPagination calculates pagination info from a total record count
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// List retrieves products with filtering and pagination. The category
// filter accepts either a numeric id or a slug; an unknown slug yields
// an empty page rather than an error.
func (s *Service) List(req *ListRequest) (*ListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = DefaultPageSize
	}

	query := s.db.Model(&Product{}).
		Preload("Categories").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("Variants")

	if !req.IncludeUnpublished {
		query = query.Where("published = ?", true)
	}

	if req.Keyword != "" {
		keyword := "%" + strings.ToLower(req.Keyword) + "%"
		query = query.Where("LOWER(title) LIKE ?", keyword)
	}

	if req.Category != "" {
		categoryID, ok, err := s.resolveCategory(req.Category)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Unknown category slug: empty result, not an error
			return &ListResponse{
				Products:   []Product{},
				Pagination: NewPagination(0, req.Page, req.Limit),
			}, nil
		}
		query = query.
			Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Where("pc.category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperror.Internal("failed to count products", err)
	}

	var products []Product
	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.Limit).Find(&products).Error; err != nil {
		return nil, apperror.Internal("failed to retrieve products", err)
	}

	return &ListResponse{
		Products:   products,
		Pagination: NewPagination(total, req.Page, req.Limit),
	}, nil
}

// GetByID retrieves a single product by id
func (s *Service) GetByID(id uint, includeUnpublished bool) (*Product, error) {
	return s.getOne("id = ?", id, includeUnpublished)
}

// GetBySlug retrieves a single product by slug
func (s *Service) GetBySlug(slug string, includeUnpublished bool) (*Product, error) {
	return s.getOne("slug = ?", slug, includeUnpublished)
}

func (s *Service) getOne(cond string, arg interface{}, includeUnpublished bool) (*Product, error) {
	var product Product
	query := s.db.
		Preload("Categories").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("Variants").
		Preload("Colors").
		Where(cond, arg)

	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("product not found")
		}
		return nil, apperror.Internal("failed to retrieve product", err)
	}

	// Unpublished products are invisible to non-admin callers
	if !product.Published && !includeUnpublished {
		return nil, apperror.NotFound("product not found")
	}

	return &product, nil
}

// Create creates a new product. The slug is derived from the title with
// a disambiguating suffix when the caller omits one.
func (s *Service) Create(req *CreateRequest) (*Product, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.Validation("product title is required")
	}
	if req.Price < 0 {
		return nil, apperror.Validation("product price must not be negative")
	}

	slug := req.Slug
	if slug == "" {
		slug = s.uniqueSlug(req.Title)
	} else if s.slugTaken(slug, 0) {
		return nil, apperror.Conflict(fmt.Sprintf("product with slug %q already exists", slug))
	}

	var existing Product
	if err := s.db.Where("sku = ?", req.SKU).First(&existing).Error; err == nil {
		return nil, apperror.Conflict(fmt.Sprintf("product with SKU %s already exists", req.SKU))
	}

	product := Product{
		Title:              req.Title,
		Slug:               slug,
		SKU:                req.SKU,
		Description:        req.Description,
		ShortDescription:   req.ShortDescription,
		Price:              req.Price,
		CompareAtPrice:     req.CompareAtPrice,
		Currency:           s.config.Pricing.Currency,
		Fabric:             req.Fabric,
		Silhouette:         req.Silhouette,
		Neckline:           req.Neckline,
		Sleeve:             req.Sleeve,
		Embellishments:     strings.Join(req.Embellishments, ","),
		CareInstructions:   req.CareInstructions,
		ProductionLeadTime: req.ProductionLeadTime,
		Sizes:              strings.Join(req.Sizes, ","),
		Tags:               strings.Join(req.Tags, ","),
		IsMadeToOrder:      req.IsMadeToOrder,
		IsLimitedEdition:   req.IsLimitedEdition,
		Published:          req.Published,
	}

	for _, img := range req.Images {
		imageType := img.Type
		if imageType == "" {
			imageType = ImageTypeZoom
		}
		product.Images = append(product.Images, ProductImage{
			URL:  img.URL,
			Alt:  img.Alt,
			Type: imageType,
		})
	}
	for _, v := range req.Variants {
		product.Variants = append(product.Variants, ProductVariant{
			SKU:          v.SKU,
			Size:         v.Size,
			Color:        v.Color,
			Fabric:       v.Fabric,
			InventoryQty: v.InventoryQty,
			WeightGrams:  v.WeightGrams,
		})
	}
	for _, c := range req.Colors {
		product.Colors = append(product.Colors, ProductColor{
			Name:        c.Name,
			Hex:         c.Hex,
			SwatchImage: c.SwatchImage,
		})
	}

	if len(req.CategoryIDs) > 0 {
		var categories []Category
		if err := s.db.Where("id IN ?", req.CategoryIDs).Find(&categories).Error; err != nil {
			return nil, apperror.Internal("failed to resolve categories", err)
		}
		product.Categories = categories
	}

	if err := s.db.Create(&product).Error; err != nil {
		// A concurrent create can slip past the pre-checks; the unique
		// indexes on slug and sku have the final say.
		if isDuplicateKey(err) {
			return nil, apperror.Conflict("product with this slug or SKU already exists")
		}
		return nil, apperror.Internal("failed to create product", err)
	}

	return s.GetByID(product.ID, true)
}

// Update applies a partial update. Omitted fields retain their prior
// value; explicit zero values are written.
func (s *Service) Update(id uint, req *UpdateRequest) (*Product, error) {
	var product Product
	if err := s.db.Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("product not found")
		}
		return nil, apperror.Internal("failed to find product", err)
	}

	if req.Slug != nil && s.slugTaken(*req.Slug, id) {
		return nil, apperror.Conflict(fmt.Sprintf("product with slug %q already exists", *req.Slug))
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, apperror.Validation("product price must not be negative")
	}

	updates := req.fieldUpdates()

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, apperror.Internal("failed to update product", err)
		}
	}

	if req.CategoryIDs != nil {
		var categories []Category
		if err := s.db.Where("id IN ?", *req.CategoryIDs).Find(&categories).Error; err != nil {
			return nil, apperror.Internal("failed to resolve categories", err)
		}
		if err := s.db.Model(&product).Association("Categories").Replace(categories); err != nil {
			return nil, apperror.Internal("failed to update categories", err)
		}
	}

	if req.Images != nil {
		if err := s.replaceImages(&product, *req.Images); err != nil {
			return nil, err
		}
	}
	if req.Variants != nil {
		if err := s.replaceVariants(&product, *req.Variants); err != nil {
			return nil, err
		}
	}
	if req.Colors != nil {
		if err := s.replaceColors(&product, *req.Colors); err != nil {
			return nil, err
		}
	}

	return s.GetByID(product.ID, true)
}

// Delete hard-deletes a product
func (s *Service) Delete(id uint) error {
	result := s.db.Select("Images", "Variants", "Colors").Delete(&Product{ID: id})
	if result.Error != nil {
		return apperror.Internal("failed to delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("product not found")
	}
	return nil
}

func (s *Service) replaceImages(product *Product, inputs []ImageInput) error {
	if err := s.db.Where("product_id = ?", product.ID).Delete(&ProductImage{}).Error; err != nil {
		return apperror.Internal("failed to replace images", err)
	}
	for i, img := range inputs {
		imageType := img.Type
		if imageType == "" {
			imageType = ImageTypeZoom
		}
		record := ProductImage{
			ProductID: product.ID,
			URL:       img.URL,
			Alt:       img.Alt,
			Type:      imageType,
			SortOrder: i,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return apperror.Internal("failed to replace images", err)
		}
	}
	return nil
}

func (s *Service) replaceVariants(product *Product, inputs []VariantInput) error {
	if err := s.db.Where("product_id = ?", product.ID).Delete(&ProductVariant{}).Error; err != nil {
		return apperror.Internal("failed to replace variants", err)
	}
	for _, v := range inputs {
		record := ProductVariant{
			ProductID:    product.ID,
			SKU:          v.SKU,
			Size:         v.Size,
			Color:        v.Color,
			Fabric:       v.Fabric,
			InventoryQty: v.InventoryQty,
			WeightGrams:  v.WeightGrams,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return apperror.Internal("failed to replace variants", err)
		}
	}
	return nil
}

func (s *Service) replaceColors(product *Product, inputs []ColorInput) error {
	if err := s.db.Where("product_id = ?", product.ID).Delete(&ProductColor{}).Error; err != nil {
		return apperror.Internal("failed to replace colors", err)
	}
	for _, c := range inputs {
		record := ProductColor{
			ProductID:   product.ID,
			Name:        c.Name,
			Hex:         c.Hex,
			SwatchImage: c.SwatchImage,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return apperror.Internal("failed to replace colors", err)
		}
	}
	return nil
}

// resolveCategory maps a category id or slug to a category id. The
// second return value reports whether the category exists.
func (s *Service) resolveCategory(idOrSlug string) (uint, bool, error) {
	if id, err := strconv.ParseUint(idOrSlug, 10, 32); err == nil {
		return uint(id), true, nil
	}

	var category Category
	if err := s.db.Where("slug = ?", idOrSlug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, apperror.Internal("failed to resolve category", err)
	}
	return category.ID, true, nil
}

func (s *Service) slugTaken(slug string, excludeID uint) bool {
	var existing Product
	query := s.db.Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	return query.First(&existing).Error == nil
}

// uniqueSlug derives a slug from the title, appending a numeric suffix
// until it no longer collides
func (s *Service) uniqueSlug(title string) string {
	base := Slugify(title)
	slug := base
	for i := 2; s.slugTaken(slug, 0); i++ {
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return slug
}

// isDuplicateKey reports whether err is a translated unique-index
// violation
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

var slugStripPattern = regexp.MustCompile(`[^\w-]+`)

// Slugify converts a title into a URL-safe slug
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = strings.Trim(slug, "-")
	return slug
}
