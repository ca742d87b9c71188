package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mobishop/pos-api/internal/application/service"
	"github.com/mobishop/pos-api/internal/config"
	"github.com/mobishop/pos-api/internal/infrastructure/database"
	"github.com/mobishop/pos-api/internal/infrastructure/repository"
	"github.com/mobishop/pos-api/internal/presentation/http/handler"
	"github.com/mobishop/pos-api/internal/presentation/http/routes"
	"github.com/mobishop/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
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

	// Seed admin user and default shop settings
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	seqRepo := repository.NewSequenceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	cartService := service.NewCartService(productRepo)
	authService := service.NewAuthService(userRepo, cartService, jwtManager)
	catalogService := service.NewCatalogService(productRepo)
	billingService := service.NewBillingService(cartService, productRepo, ledgerRepo, seqRepo)
	reportService := service.NewReportService(ledgerRepo, productRepo)
	dashboardService := service.NewDashboardService(productRepo, ledgerRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(catalogService),
		Cart:      handler.NewCartHandler(cartService),
		Billing:   handler.NewBillingHandler(billingService),
		Report:    handler.NewReportHandler(reportService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
	}

	// Setup router
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Start server
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s on port %s", cfg.App.Name, port)
	if err := router.Run(":" + port); err != nil {
		log.Printf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
