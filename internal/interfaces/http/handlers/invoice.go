// internal/interfaces/http/handlers/invoice.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/domain/order"
	"github.com/coquette-threads/storefront-backend/internal/interfaces/http/middleware"
	"github.com/coquette-threads/storefront-backend/internal/pkg/apperror"
	"github.com/coquette-threads/storefront-backend/internal/pkg/pdf"
)

// InvoiceHandler handles invoice endpoints
type InvoiceHandler struct {
	orderService *order.Service
	pdfService   *pdf.Service
	config       *config.Config
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(db *gorm.DB, cfg *config.Config) *InvoiceHandler {
	return &InvoiceHandler{
		orderService: order.NewService(db, cfg),
		pdfService:   pdf.NewService(cfg),
		config:       cfg,
	}
}

// DownloadInvoice handles GET /orders/:id/invoice. Owners download
// their own invoices, admins any.
func (h *InvoiceHandler) DownloadInvoice(c *gin.Context) {
	currentUser, ok := middleware.GetUserFromContext(c)
	if !ok {
		respondError(c, apperror.Unauthenticated("authentication required"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondValidation(c, "invalid order id")
		return
	}

	found, err := h.orderService.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	if found.UserID != currentUser.ID && !currentUser.HasAdminAccess() {
		respondError(c, apperror.Forbidden("you do not have access to this order"))
		return
	}

	buf, err := h.pdfService.GenerateInvoice(found)
	if err != nil {
		respondError(c, apperror.Internal("failed to generate invoice", err))
		return
	}

	filename := fmt.Sprintf("invoice-%06d.pdf", found.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
