package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/bonusplayerslive-star/neon-kafe/internal/application/service"
	"github.com/bonusplayerslive-star/neon-kafe/internal/config"
	"github.com/bonusplayerslive-star/neon-kafe/internal/infrastructure/database"
	"github.com/bonusplayerslive-star/neon-kafe/internal/infrastructure/repository"
	"github.com/bonusplayerslive-star/neon-kafe/internal/presentation/http/handler"
	"github.com/bonusplayerslive-star/neon-kafe/internal/presentation/http/routes"
	"github.com/bonusplayerslive-star/neon-kafe/internal/presentation/ws"
	"github.com/bonusplayerslive-star/neon-kafe/pkg/receipt"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	summaryRepo := repository.NewDaySummaryRepository(db)

	// Realtime hub for dashboards and table views
	hub := ws.NewHub()
	go hub.Run(ctx)
	notifier := ws.NewBroadcaster(hub)

	// Initialize thermal printer
	thermalPrinter, err := receipt.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = receipt.NewNullPrinter()
	}

	// Initialize services
	catalogService := service.NewCatalogService(productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, ledgerRepo, notifier)
	reportService := service.NewReportService(ledgerRepo, summaryRepo, orderService, notifier, thermalPrinter, cfg.Storage.Path)

	// Initialize handlers
	handlers := &routes.Handlers{
		Catalog: handler.NewCatalogHandler(catalogService),
		Order:   handler.NewOrderHandler(orderService),
		Report:  handler.NewReportHandler(reportService),
		Gateway: ws.NewGateway(hub, catalogService, orderService, reportService),
	}

	// Setup routes and start server
	router := routes.Setup(handlers, cfg)

	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
