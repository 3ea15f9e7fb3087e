package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/medipos/pharmapos-api/internal/application/service"
	"github.com/medipos/pharmapos-api/internal/config"
	"github.com/medipos/pharmapos-api/internal/infrastructure/database"
	"github.com/medipos/pharmapos-api/internal/infrastructure/repository"
	"github.com/medipos/pharmapos-api/internal/presentation/http/handler"
	"github.com/medipos/pharmapos-api/internal/presentation/http/routes"
	"github.com/medipos/pharmapos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the initial admin account
	if err := database.SeedDefaultAdmin(db); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Business timezone for settlement day bucketing
	loc := cfg.App.Location()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	depositRepo := repository.NewDepositRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	wholesalerRepo := repository.NewWholesalerRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	authService := service.NewAuthService(userRepo, jwtManager, auditService)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, auditService)
	saleService := service.NewSaleService(saleRepo, productRepo, customerRepo, auditService)
	customerService := service.NewCustomerService(customerRepo, auditService)
	depositService := service.NewDepositService(depositRepo)
	settlementService := service.NewSettlementService(saleRepo, auditRepo, depositRepo, loc)
	wholesalerService := service.NewWholesalerService(wholesalerRepo)
	dashboardService := service.NewDashboardService(saleRepo, productRepo, settlementService, loc)
	exportService := service.NewExportService(saleRepo, loc)

	// Initialize handlers
	h := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		User:       handler.NewUserHandler(userService),
		Product:    handler.NewProductHandler(productService),
		Sale:       handler.NewSaleHandler(saleService, exportService, loc),
		Customer:   handler.NewCustomerHandler(customerService),
		Deposit:    handler.NewDepositHandler(depositService, loc),
		Settlement: handler.NewSettlementHandler(settlementService),
		Audit:      handler.NewAuditHandler(auditService),
		Wholesaler: handler.NewWholesalerHandler(wholesalerService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}

	router := routes.Setup(h, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s on port %s (env: %s)", cfg.App.Name, port, cfg.App.Env)
	if err := router.Run(":" + port); err != nil {
		log.Printf("Server failed to start: %v", err)
		os.Exit(1)
	}
}
