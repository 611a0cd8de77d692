package main

import (
	"flag"
	"fmt"
	"log"

	"gorm.io/gorm/schema"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/analytics"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/config"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/database"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"
)

func main() {
	// Command line flags
	var (
		drop = flag.Bool("drop", false, "Drop all tables before migration")
		help = flag.Bool("help", false, "Show help")
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

	fmt.Println("🚀 Starting Database Migration Tool")
	fmt.Printf("📊 Database: %s@%s:%s/%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Check connection
	if err := database.CheckConnection(database.DB); err != nil {
		log.Printf("⚠️  Warning: %v", err)
	}

	// Drop tables if requested
	if *drop {
		fmt.Println("⚠️  Dropping all tables...")
		if err := dropAllTables(); err != nil {
			log.Fatalf("❌ Failed to drop tables: %v", err)
		}
		fmt.Println("✅ All tables dropped")
	}

	// Run AutoMigrate
	fmt.Println("🔄 Running GORM AutoMigrate...")
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("❌ Failed to run migration: %v", err)
	}

	fmt.Println("✅ Migration completed successfully!")

	// Show table count
	var tableCount int64
	err = database.DB.Raw(`
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		AND table_type = 'BASE TABLE'
	`).Scan(&tableCount).Error

	if err == nil {
		fmt.Printf("📊 Total tables created: %d\n", tableCount)
	}

	showPostMigrationInfo()
}

func dropAllTables() error {
	tables := append(models.AllModels(), analytics.ViewModels()...)

	// Reverse order so referencing tables go before the tables they point at.
	for i := len(tables) - 1; i >= 0; i-- {
		name := ""
		if t, ok := tables[i].(schema.Tabler); ok {
			name = t.TableName()
		}
		fmt.Printf("  Dropping table: %s\n", name)
		if err := database.DB.Migrator().DropTable(tables[i]); err != nil {
			log.Printf("  Warning: Failed to drop %s: %v", name, err)
		}
	}

	return nil
}

func showHelp() {
	fmt.Print(`
Database Migration Tool for the Retail Sales and Inventory Intelligence System

Usage:
  go run cmd/migrate/main.go [options]

Options:
  -drop     Drop all tables before migration (WARNING: Data loss!)
  -help     Show this help message

Examples:
  # Run migration (create/update tables)
  go run cmd/migrate/main.go

  # Drop all tables and recreate
  go run cmd/migrate/main.go -drop

Environment:
  Requires .env file or environment variables for database configuration:
  - DB_HOST
  - DB_PORT
  - DB_USER
  - DB_PASSWORD
  - DB_NAME

`)
}

func showPostMigrationInfo() {
	fmt.Print(`
📝 Next Steps:
1. Seed sample data:
   go run cmd/seed/main.go

2. Materialize the KPI views:
   go run cmd/export/main.go

3. Start the API server:
   go run main.go

Note: Check constraints and indexes are created during migration. The
constraints mirror the entity store's validation rules: positive prices
and quantities, discounts between 0 and 1, and the order status values.

`)
}
