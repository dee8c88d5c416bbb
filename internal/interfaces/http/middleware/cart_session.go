// internal/interfaces/http/middleware/cart_session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CartSessionHeader carries the anonymous cart session id between
	// the storefront client and the API.
	CartSessionHeader = "X-Cart-Session"

	contextCartSessionKey = "cart_session_id"
)

// CartSession resolves the cart session id for the request. A missing
// or malformed id gets replaced with a fresh uuid, which is echoed back
// so the client can persist it.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(CartSessionHeader)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.New().String()
		}

		c.Set(contextCartSessionKey, sessionID)
		c.Header(CartSessionHeader, sessionID)

		c.Next()
	}
}

// GetCartSessionID extracts the cart session id from gin context
func GetCartSessionID(c *gin.Context) string {
	return c.GetString(contextCartSessionKey)
}
