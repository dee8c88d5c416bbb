// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/domain/user"
	"github.com/coquette-threads/storefront-backend/internal/pkg/apperror"
	"github.com/coquette-threads/storefront-backend/internal/pkg/auth"
)

const (
	contextUserKey   = "current_user"
	contextUserIDKey = "user_id"
)

// AuthMiddleware creates JWT authentication middleware. The user record
// is re-fetched on every request so role changes take effect without
// forcing a re-login.
func AuthMiddleware(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperror.Unauthenticated("authorization header required"))
			return
		}

		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			abortWithError(c, apperror.Unauthenticated("invalid authorization header format"))
			return
		}

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			abortWithError(c, apperror.Unauthenticated("invalid or expired token"))
			return
		}

		var currentUser user.User
		if err := db.Where("id = ?", claims.UserID).First(&currentUser).Error; err != nil {
			abortWithError(c, apperror.Unauthenticated("invalid or expired token"))
			return
		}

		c.Set(contextUserKey, &currentUser)
		c.Set(contextUserIDKey, currentUser.ID)

		c.Next()
	}
}

// AdminMiddleware ensures the authenticated user may use the admin
// surface. Either the role or the legacy is_admin flag grants access.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		currentUser, ok := GetUserFromContext(c)
		if !ok {
			abortWithError(c, apperror.Unauthenticated("authentication required"))
			return
		}

		if !currentUser.HasAdminAccess() {
			abortWithError(c, apperror.Forbidden("admin access required"))
			return
		}

		c.Next()
	}
}

// OptionalAuthMiddleware restores the user when a valid token is
// present and silently continues when it is not, so public reads can
// widen their result set for admins.
func OptionalAuthMiddleware(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		var currentUser user.User
		if err := db.Where("id = ?", claims.UserID).First(&currentUser).Error; err != nil {
			c.Next()
			return
		}

		c.Set(contextUserKey, &currentUser)
		c.Set(contextUserIDKey, currentUser.ID)

		c.Next()
	}
}

// GetUserFromContext extracts the authenticated user from gin context
func GetUserFromContext(c *gin.Context) (*user.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	currentUser, ok := value.(*user.User)
	return currentUser, ok
}

// GetUserIDFromContext extracts the authenticated user id from gin context
func GetUserIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get(contextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// IsAdminFromContext reports whether the request carries an admin user
func IsAdminFromContext(c *gin.Context) bool {
	currentUser, ok := GetUserFromContext(c)
	return ok && currentUser.HasAdminAccess()
}

func abortWithError(c *gin.Context, err *apperror.Error) {
	c.JSON(err.HTTPStatus(), gin.H{
		"code":    err.Code,
		"message": err.Message,
	})
	c.Abort()
}
