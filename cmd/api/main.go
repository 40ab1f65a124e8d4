package main

import (
	"context"
	"log"

	"github.com/brightbreeze/billing-api/internal/application/service"
	"github.com/brightbreeze/billing-api/internal/config"
	"github.com/brightbreeze/billing-api/internal/infrastructure/kvstore"
	"github.com/brightbreeze/billing-api/internal/infrastructure/replicator"
	"github.com/brightbreeze/billing-api/internal/presentation/http/handler"
	"github.com/brightbreeze/billing-api/internal/presentation/http/routes"
	"github.com/brightbreeze/billing-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the snapshot store. A failed open falls back to a volatile
	// in-memory store so the terminal can still ring up sales.
	var store kvstore.Store
	store, err := kvstore.NewSQLite(cfg.Database.Path)
	if err != nil {
		log.Printf("Warning: failed to open snapshot store at %s, using in-memory store: %v", cfg.Database.Path, err)
		store = kvstore.NewMemory()
	}

	// Initialize best-effort replication
	var repl replicator.Replicator = replicator.Nop{}
	if cfg.Redis.Addr != "" {
		redisRepl := replicator.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.KeyPrefix, cfg.Redis.Timeout)
		defer redisRepl.Close()
		repl = redisRepl
		log.Printf("Replicating snapshots to redis at %s", cfg.Redis.Addr)
	}

	// Load persisted state, seeding defaults on first run
	state := service.NewAppState(context.Background(), store, repl)

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize services
	authService := service.NewAuthService(jwtManager, []service.Credential{
		{Username: cfg.Auth.AdminUsername, Password: cfg.Auth.AdminPassword, Role: "admin"},
		{Username: cfg.Auth.SalesUsername, Password: cfg.Auth.SalesPassword, Role: "sales"},
	})
	catalogService := service.NewCatalogService(state)
	cartService := service.NewCartService(state)
	ledgerService := service.NewLedgerService(state)
	settingsService := service.NewSettingsService(state)
	invoiceService := service.NewInvoiceService(state)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Cart:     handler.NewCartHandler(cartService),
		Sales:    handler.NewSalesHandler(ledgerService, invoiceService),
		Settings: handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
