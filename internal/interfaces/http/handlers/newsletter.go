// internal/interfaces/http/handlers/newsletter.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/domain/newsletter"
)

// NewsletterHandler handles newsletter endpoints
type NewsletterHandler struct {
	newsletterService *newsletter.Service
	config            *config.Config
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(db *gorm.DB, cfg *config.Config) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletter.NewService(db, cfg),
		config:            cfg,
	}
}

// Subscribe handles POST /newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req newsletter.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "a valid email is required")
		return
	}

	subscriber, err := h.newsletterService.Subscribe(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Subscribed successfully", subscriber)
}
