// internal/interfaces/http/handlers/order.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/domain/cart"
	"github.com/coquette-threads/storefront-backend/internal/domain/order"
	"github.com/coquette-threads/storefront-backend/internal/domain/product"
	"github.com/coquette-threads/storefront-backend/internal/interfaces/http/middleware"
	"github.com/coquette-threads/storefront-backend/internal/pkg/apperror"
	"github.com/coquette-threads/storefront-backend/internal/pkg/email"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService *order.Service
	cartService  *cart.Service
	emailService *email.Service
	config       *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *OrderHandler {
	productService := product.NewService(db, cfg)
	return &OrderHandler{
		orderService: order.NewService(db, cfg),
		cartService:  cart.NewService(redisClient, cfg, productService),
		emailService: email.NewService(cfg),
		config:       cfg,
	}
}

// PlaceOrder handles POST /orders. On success the session cart, if the
// client sent one, is cleared, and a confirmation email goes out
// best-effort.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	currentUser, ok := middleware.GetUserFromContext(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("authentication required"))
		return
	}

	var req order.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid order payload")
		return
	}

	placed, err := h.orderService.Place(currentUser.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if sessionID := c.GetHeader(middleware.CartSessionHeader); sessionID != "" {
		_ = h.cartService.Clear(c.Request.Context(), sessionID)
	}

	if err := h.emailService.SendOrderConfirmation(c.Request.Context(), currentUser.Name, currentUser.Email, placed); err != nil {
		logrus.WithField("order_id", placed.ID).Warnf("Failed to send order confirmation email: %v", err)
	}

	respondCreated(c, "Order placed successfully", placed)
}

// GetOrder handles GET /orders/:id. Owners see their own orders, admins
// see all.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	found, ok := h.loadOrderForCaller(c)
	if !ok {
		return
	}

	respondOK(c, "Order retrieved successfully", found)
}

// PayOrder handles PUT /orders/:id/pay
func (h *OrderHandler) PayOrder(c *gin.Context) {
	found, ok := h.loadOrderForCaller(c)
	if !ok {
		return
	}

	var confirmation order.PaymentConfirmation
	if err := c.ShouldBindJSON(&confirmation); err != nil {
		respondValidation(c, "invalid payment confirmation payload")
		return
	}

	updated, err := h.orderService.MarkPaid(found.ID, &confirmation)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Order marked as paid", updated)
}

// DeliverOrder handles PUT /orders/:id/deliver (admin)
func (h *OrderHandler) DeliverOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondValidation(c, "invalid order id")
		return
	}

	updated, err := h.orderService.MarkDelivered(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Order marked as delivered", updated)
}

// GetMyOrders handles GET /orders/myorders
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("authentication required"))
		return
	}

	orders, err := h.orderService.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Orders retrieved successfully", orders)
}

// GetAllOrders handles GET /orders (admin)
func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	orders, err := h.orderService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Orders retrieved successfully", orders)
}

// loadOrderForCaller parses the :id param, loads the order and enforces
// the owner-or-admin rule. It writes the error response itself when the
// second return value is false.
func (h *OrderHandler) loadOrderForCaller(c *gin.Context) (*order.Order, bool) {
	currentUser, ok := middleware.GetUserFromContext(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("authentication required"))
		return nil, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondValidation(c, "invalid order id")
		return nil, false
	}

	found, err := h.orderService.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	if found.UserID != currentUser.ID && !currentUser.HasAdminAccess() {
		respondError(c, apperror.Forbidden("you do not have access to this order"))
		return nil, false
	}

	return found, true
}
