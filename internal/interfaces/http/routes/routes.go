// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/interfaces/http/handlers"
	"github.com/coquette-threads/storefront-backend/internal/interfaces/http/middleware"
)

// SetupRoutes mounts every API route group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	SetupAuthRoutes(rg, db, cfg)
	SetupProductRoutes(rg, db, cfg)
	SetupCategoryRoutes(rg, db, cfg)
	SetupCartRoutes(rg, db, redisClient, cfg)
	SetupOrderRoutes(rg, db, redisClient, cfg)
	SetupNewsletterRoutes(rg, db, cfg)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg, db))
		{
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

// SetupProductRoutes sets up catalog routes. Reads are public with
// optional auth so admins see unpublished products; writes are
// admin-only.
func SetupProductRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)

	products := rg.Group("/products")
	products.Use(middleware.OptionalAuthMiddleware(cfg, db))
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/slug/:slug", productHandler.GetProductBySlug)
	}

	admin := rg.Group("/products")
	admin.Use(middleware.AuthMiddleware(cfg, db))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("", productHandler.CreateProduct)
		admin.PUT("/:id", productHandler.UpdateProduct)
		admin.DELETE("/:id", productHandler.DeleteProduct)
	}
}

// SetupCategoryRoutes sets up category routes
func SetupCategoryRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	categoryHandler := handlers.NewCategoryHandler(db, cfg)

	categories := rg.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)
		categories.GET("/:slug", categoryHandler.GetCategoryBySlug)
	}

	admin := rg.Group("/categories")
	admin.Use(middleware.AuthMiddleware(cfg, db))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("", categoryHandler.CreateCategory)
	}
}

// SetupCartRoutes sets up session cart routes. No account is needed;
// the session id in the X-Cart-Session header identifies the cart.
func SetupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg)

	cart := rg.Group("/cart")
	cart.Use(middleware.CartSession())
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.DELETE("/items", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

// SetupOrderRoutes sets up order routes. Everything requires a login;
// listing all orders and marking delivery are admin-only.
func SetupOrderRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(db, redisClient, cfg)
	invoiceHandler := handlers.NewInvoiceHandler(db, cfg)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg, db))
	{
		orders.POST("", orderHandler.PlaceOrder)
		orders.GET("/myorders", orderHandler.GetMyOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id/pay", orderHandler.PayOrder)
		orders.GET("/:id/invoice", invoiceHandler.DownloadInvoice)

		admin := orders.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("", orderHandler.GetAllOrders)
			admin.PUT("/:id/deliver", orderHandler.DeliverOrder)
		}
	}
}

// SetupNewsletterRoutes sets up newsletter routes
func SetupNewsletterRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	newsletterHandler := handlers.NewNewsletterHandler(db, cfg)

	newsletter := rg.Group("/newsletter")
	{
		newsletter.POST("/subscribe", newsletterHandler.Subscribe)
	}
}
