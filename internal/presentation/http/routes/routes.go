package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mobishop/pos-api/internal/config"
	domainRepo "github.com/mobishop/pos-api/internal/domain/repository"
	"github.com/mobishop/pos-api/internal/presentation/http/handler"
	"github.com/mobishop/pos-api/internal/presentation/http/middleware"
	"github.com/mobishop/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Cart      *handler.CartHandler
	Billing   *handler.BillingHandler
	Report    *handler.ReportHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
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
		v1.POST("/auth/login", h.Auth.Login)
		v1.POST("/auth/refresh", h.Auth.RefreshToken)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Product catalog routes
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	// Cart routes
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:product_id", h.Cart.UpdateItem)
		cart.DELETE("/items/:product_id", h.Cart.RemoveItem)
	}

	// Billing routes. Issuing an invoice mutates stock and the ledger,
	// so it requires an Idempotency-Key header.
	billing := protected.Group("/billing")
	{
		billing.POST("/preview", h.Billing.Preview)
		billing.POST("/invoices",
			middleware.IdempotencyRequired(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Billing.Issue)
	}

	// Sales ledger routes
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Billing.ListInvoices)
		invoices.GET("/:number", h.Billing.GetInvoice)
	}

	// Report routes
	reports := protected.Group("/reports")
	{
		reports.GET("/daily", h.Report.Daily)
		reports.GET("/monthly", h.Report.Monthly)
		reports.GET("/tax", h.Report.Tax)
		reports.GET("/top-sellers", h.Report.TopSellers)
		reports.GET("/low-stock", h.Report.LowStock)
	}

	// Dashboard routes
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Settings routes
	settings := protected.Group("/settings")
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", h.Settings.Update)
		settings.GET("/upi-uri", h.Settings.UPIURI)
	}
}
