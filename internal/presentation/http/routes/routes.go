package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medipos/pharmapos-api/internal/config"
	domainRepo "github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/internal/presentation/http/handler"
	"github.com/medipos/pharmapos-api/internal/presentation/http/middleware"
	"github.com/medipos/pharmapos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Product    *handler.ProductHandler
	Sale       *handler.SaleHandler
	Customer   *handler.CustomerHandler
	Deposit    *handler.DepositHandler
	Settlement *handler.SettlementHandler
	Audit      *handler.AuditHandler
	Wholesaler *handler.WholesalerHandler
	Dashboard  *handler.DashboardHandler
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

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		idempotency := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})

		registerProtectedRoutes(protected, h, idempotency)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, idempotency gin.HandlerFunc) {
	// Auth/Profile
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.Profile)

	// POS terminal (any authenticated user)
	protected.POST("/sales/checkout", idempotency, h.Sale.Checkout)
	protected.GET("/sales", h.Sale.List)
	protected.GET("/sales/:id", h.Sale.Get)

	protected.GET("/products", h.Product.List)
	protected.GET("/products/:id", h.Product.Get)

	protected.GET("/customers", h.Customer.List)
	protected.GET("/customers/:id", h.Customer.Get)
	protected.POST("/customers", h.Customer.Create)
	protected.POST("/customers/:id/debt", h.Customer.UpdateDebt)

	protected.POST("/deposits", idempotency, h.Deposit.Create)
	protected.GET("/deposits", h.Deposit.List)

	protected.GET("/settlements/me", h.Settlement.MyBalance)

	// Admin-only management
	admin := protected.Group("")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/dashboard", h.Dashboard.Stats)

		admin.POST("/users", h.User.Create)
		admin.GET("/users", h.User.List)
		admin.GET("/users/:id", h.User.Get)
		admin.PUT("/users/:id", h.User.Update)
		admin.DELETE("/users/:id", h.User.Delete)

		admin.POST("/products", h.Product.Create)
		admin.PUT("/products/:id", h.Product.Update)
		admin.POST("/products/:id/stock", h.Product.AdjustStock)
		admin.DELETE("/products/:id", h.Product.Archive)
		admin.GET("/products/low-stock", h.Product.LowStock)
		admin.GET("/products/expiring", h.Product.Expiring)

		admin.GET("/sales/export", h.Sale.ExportCSV)
		admin.GET("/sales/export/xlsx", h.Sale.ExportXLSX)

		admin.GET("/settlements/history", h.Settlement.History)
		admin.GET("/settlements/balances", h.Settlement.Balances)

		admin.GET("/audit-logs", h.Audit.List)

		admin.POST("/wholesalers", h.Wholesaler.Create)
		admin.GET("/wholesalers", h.Wholesaler.List)
		admin.GET("/wholesalers/:id", h.Wholesaler.Get)
		admin.PUT("/wholesalers/:id", h.Wholesaler.Update)
		admin.DELETE("/wholesalers/:id", h.Wholesaler.Delete)
	}
}
