// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/domain/product"
	"github.com/coquette-threads/storefront-backend/internal/pkg/apperror"
)

// Service handles session cart persistence. Carts live in Redis with a
// TTL; every mutation rewrites the full cart, mirroring the client's
// local-storage behavior.
type Service struct {
	redis          *redis.Client
	config         *config.Config
	productService *product.Service
}

// NewService creates a new cart service
func NewService(redisClient *redis.Client, cfg *config.Config, productService *product.Service) *Service {
	return &Service{
		redis:          redisClient,
		config:         cfg,
		productService: productService,
	}
}

// AddItemRequest represents an add-to-cart payload
type AddItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// RemoveItemRequest represents a remove-from-cart payload
type RemoveItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size"`
}

// CartResponse represents a cart with its totals
type CartResponse struct {
	Cart   *SessionCart `json:"cart"`
	Totals Totals       `json:"totals"`
}

// Get retrieves the cart for a session, returning an empty cart when
// none exists yet
func (s *Service) Get(ctx context.Context, sessionID string) (*CartResponse, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &CartResponse{Cart: cart, Totals: cart.CalculateTotals()}, nil
}

// AddItem adds a (product, size) selection to the session cart. The
// product snapshot is taken from the catalog at add time.
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*CartResponse, error) {
	p, err := s.productService.GetByID(req.ProductID, false)
	if err != nil {
		return nil, err
	}

	if req.Size != "" && p.VariantForSize(req.Size) == nil && len(p.Variants) > 0 {
		return nil, apperror.Validation(fmt.Sprintf("size %q is not available for %q", req.Size, p.Title))
	}

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Add(CartItem{
		ProductID: p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Price:     p.Price,
		Image:     p.HeroImage(),
		Size:      req.Size,
		Quantity:  req.Quantity,
	})

	if err := s.store(ctx, cart); err != nil {
		return nil, err
	}
	return &CartResponse{Cart: cart, Totals: cart.CalculateTotals()}, nil
}

// RemoveItem deletes a (product, size) line from the session cart
func (s *Service) RemoveItem(ctx context.Context, sessionID string, req *RemoveItemRequest) (*CartResponse, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !cart.Remove(req.ProductID, req.Size) {
		return nil, apperror.NotFound("cart item not found")
	}

	if err := s.store(ctx, cart); err != nil {
		return nil, err
	}
	return &CartResponse{Cart: cart, Totals: cart.CalculateTotals()}, nil
}

// Clear empties the session cart. Called explicitly by the client and
// after successful order placement.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return apperror.Internal("failed to clear cart", err)
	}
	return nil
}

func (s *Service) key(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func (s *Service) load(ctx context.Context, sessionID string) (*SessionCart, error) {
	data, err := s.redis.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		now := time.Now().UTC()
		return &SessionCart{
			SessionID: sessionID,
			Items:     []CartItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	}
	if err != nil {
		return nil, apperror.Internal("failed to load cart", err)
	}

	var cart SessionCart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, apperror.Internal("failed to decode cart", err)
	}
	return &cart, nil
}

func (s *Service) store(ctx context.Context, cart *SessionCart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return apperror.Internal("failed to encode cart", err)
	}
	if err := s.redis.Set(ctx, s.key(cart.SessionID), data, s.config.Cart.SessionTTL).Err(); err != nil {
		return apperror.Internal("failed to store cart", err)
	}
	return nil
}
