// internal/domain/newsletter/service.go
package newsletter

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/pkg/apperror"
)

// Service handles newsletter subscriptions
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new newsletter service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// SubscribeRequest represents a subscription payload
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe records an email address, rejecting duplicates
func (s *Service) Subscribe(req *SubscribeRequest) (*Subscriber, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, apperror.Validation("email is required")
	}

	var existing Subscriber
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, apperror.Conflict("email already subscribed")
	}

	subscriber := Subscriber{Email: email}
	if err := s.db.Create(&subscriber).Error; err != nil {
		// Concurrent signups race the pre-check; the unique email index
		// settles it
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("email already subscribed")
		}
		return nil, apperror.Internal("failed to create subscriber", err)
	}

	return &subscriber, nil
}
