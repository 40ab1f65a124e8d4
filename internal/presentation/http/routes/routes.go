package routes

import (
	"time"

	"github.com/brightbreeze/billing-api/internal/config"
	"github.com/brightbreeze/billing-api/internal/presentation/http/handler"
	"github.com/brightbreeze/billing-api/internal/presentation/http/middleware"
	"github.com/brightbreeze/billing-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Sales    *handler.SalesHandler
	Settings *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/auth/me", h.Auth.Me)

	// Settings: readable by every operator, writable by admins
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", middleware.RequireRole("admin"), h.Settings.UpdateSettings)

	registerCatalogRoutes(protected, h)
	registerCartRoutes(protected, h)
	registerSalesRoutes(protected, h)
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Catalog.ListCategories)
		categories.POST("", middleware.RequireRole("admin"), h.Catalog.CreateCategory)
		categories.PUT("/:id", middleware.RequireRole("admin"), h.Catalog.UpdateCategory)
		categories.DELETE("/:id", middleware.RequireRole("admin"), h.Catalog.DeleteCategory)
	}

	items := protected.Group("/items")
	{
		items.GET("", h.Catalog.ListItems)
		items.POST("", middleware.RequireRole("admin"), h.Catalog.CreateItem)
		items.POST("/import", middleware.RequireRole("admin"), h.Catalog.ImportCatalog)
		items.GET("/:id/stock", h.Cart.GetAvailableStock)
		items.PUT("/:id", middleware.RequireRole("admin"), h.Catalog.UpdateItem)
		items.DELETE("/:id", middleware.RequireRole("admin"), h.Catalog.DeleteItem)
	}
}

func registerCartRoutes(protected *gin.RouterGroup, h *Handlers) {
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.GetCart)
		cart.DELETE("", h.Cart.ClearCart)
		cart.POST("/items", h.Cart.AddItem)
		cart.POST("/custom-items", h.Cart.AddCustomLine)
		cart.PUT("/items/:id/quantity", h.Cart.UpdateQuantity)
		cart.PUT("/items/:id/gst", h.Cart.UpdateLineGst)
		cart.PUT("/items/:id/price", h.Cart.UpdateLinePrice)
		cart.DELETE("/items/:id", h.Cart.RemoveItem)
		cart.PUT("/customer", h.Cart.SetCustomer)
	}
}

func registerSalesRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sales.ListSales)
		sales.POST("", h.Sales.Checkout)
		sales.GET("/summary", h.Sales.GetSummary)
		sales.GET("/:id", h.Sales.GetSale)
		sales.GET("/:id/invoice", h.Sales.GetInvoice)
		sales.DELETE("/:id", middleware.RequireRole("admin"), h.Sales.DeleteSale)
	}

	protected.GET("/invoice/preview", h.Sales.PreviewInvoice)
}
