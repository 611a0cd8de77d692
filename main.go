package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/analytics"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/config"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/database"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/logger"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/metrics"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/registry"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/web"
)

func main() {
	// Command line flags
	var (
		migrate = flag.Bool("migrate", false, "Run database migration on startup")
		seed    = flag.Bool("seed", false, "Seed database with sample data")
		help    = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.App.Environment,
		ServiceName: cfg.App.Name,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zap.L().Sync()

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		zap.L().Fatal("failed to initialize database", zap.Error(err))
	}
	defer database.Close()

	// Check database connection
	if err := database.CheckConnection(database.DB); err != nil {
		zap.L().Fatal("database connection check failed", zap.Error(err))
	}

	// Run migration if requested
	if *migrate {
		zap.L().Info("running database migration")
		if err := database.AutoMigrate(database.DB); err != nil {
			zap.L().Fatal("failed to migrate database", zap.Error(err))
		}
		zap.L().Info("migration completed successfully")
	}

	// Seed database if requested
	if *seed {
		zap.L().Info("seeding database with sample data")
		if err := database.SeedData(database.DB); err != nil {
			zap.L().Fatal("failed to seed database", zap.Error(err))
		}
		zap.L().Info("database seeded successfully")
	}

	// Hydrate the entity store from the warehouse
	st, err := database.Hydrate(database.DB)
	if err != nil {
		zap.L().Fatal("failed to hydrate entity store", zap.Error(err))
	}
	metrics.SetEntityRows(st.Counts())

	// Build the derivation engine and register the views
	engine := analytics.New(analytics.Config{
		ProfitMargin: decimal.NewFromFloat(cfg.Engine.ProfitMargin),
	})
	reg := registry.New(st, engine, logger.GetLogger())

	// Warm every view so the first request is served from cache
	if err := reg.RefreshAll(); err != nil {
		zap.L().Fatal("failed to refresh views", zap.Error(err))
	}
	zap.L().Info("views ready", zap.Int("views", len(reg.Names())))

	// Create and start web server
	server := web.NewServer(cfg.App.Name, st, reg)

	// Start server in a goroutine
	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			zap.L().Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for interrupt signal
	<-quit
	zap.L().Info("shutting down server")
	if err := server.Shutdown(); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}
}

func showHelp() {
	log.Print(`
Retail Sales and Inventory Intelligence System Server

Usage:
  go run main.go [options]

Options:
  -migrate  Run GORM AutoMigrate on startup
  -seed     Seed database with sample data
  -help     Show this help message

Examples:
  # Start server only
  go run main.go

  # Start server with migration
  go run main.go -migrate

  # Start server with migration and seed
  go run main.go -migrate -seed

  # Seed data only
  go run main.go -seed

For full migration control, use:
  go run cmd/migrate/main.go

For full seed control, use:
  go run cmd/seed/main.go

To materialize the KPI views into the warehouse, use:
  go run cmd/export/main.go

`)
}
