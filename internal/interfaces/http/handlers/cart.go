// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/domain/cart"
	"github.com/coquette-threads/storefront-backend/internal/domain/product"
	"github.com/coquette-threads/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles session cart endpoints. The session id travels in
// the X-Cart-Session header, resolved by the CartSession middleware.
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *CartHandler {
	productService := product.NewService(db, cfg)
	return &CartHandler{
		cartService: cart.NewService(redisClient, cfg, productService),
		config:      cfg,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.GetCartSessionID(c)

	response, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Cart retrieved successfully", response)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "product_id is required")
		return
	}

	sessionID := middleware.GetCartSessionID(c)

	response, err := h.cartService.AddItem(c.Request.Context(), sessionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Item added to cart", response)
}

// RemoveItem handles DELETE /cart/items
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req cart.RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "product_id is required")
		return
	}

	sessionID := middleware.GetCartSessionID(c)

	response, err := h.cartService.RemoveItem(c.Request.Context(), sessionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Item removed from cart", response)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := middleware.GetCartSessionID(c)

	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Cart cleared successfully", nil)
}
