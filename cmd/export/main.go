package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/analytics"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/config"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/database"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/logger"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/registry"
)

func main() {
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("📤 Starting KPI View Export Tool")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	fmt.Printf("📊 Database: %s@%s:%s/%s\n\n", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.App.Environment,
		ServiceName: cfg.App.Name,
	}); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	// Check connection
	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatal("Database connection check failed:", err)
	}

	// Hydrate the entity store from the warehouse
	st, err := database.Hydrate(database.DB)
	if err != nil {
		log.Fatal("Failed to hydrate entity store:", err)
	}
	fmt.Println("✅ Entity store hydrated")

	// Build the engine and registry, refresh every view, and write the
	// results back into the kpi_* tables
	engine := analytics.New(analytics.Config{
		ProfitMargin: decimal.NewFromFloat(cfg.Engine.ProfitMargin),
	})
	reg := registry.New(st, engine, logger.GetLogger())

	if err := database.ExportViews(database.DB, reg); err != nil {
		log.Fatal("Failed to export views:", err)
	}

	// Show statistics
	fmt.Println("\n📊 Exported Views:")
	for _, status := range reg.Status() {
		fmt.Printf("  %-28s: %d rows\n", status.Name, status.RowCount)
	}

	fmt.Println("\n✨ Export completed successfully!")
}

func showHelp() {
	fmt.Println("KPI View Export Tool")
	fmt.Println("====================")
	fmt.Println("\nReads the entity tables, derives every KPI view from one")
	fmt.Println("snapshot, and materializes the results into the kpi_* tables.")
	fmt.Println("\nUsage:")
	fmt.Println("  go run cmd/export/main.go [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -help     Show this help message")
}
