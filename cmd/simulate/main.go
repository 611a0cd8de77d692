package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/config"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/database"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/loader"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"
)

func main() {
	// Parse command line flags
	var (
		startDate  = flag.String("start", "2024-01-08", "Simulation start date (YYYY-MM-DD)")
		days       = flag.Int("days", 30, "Number of trading days to simulate")
		customers  = flag.Int("customers", 40, "Number of customers to generate")
		daily      = flag.Int("daily", 6, "Average orders per day")
		randSeed   = flag.Int64("rand-seed", 1, "Random seed (same seed, same dataset)")
		clear      = flag.Bool("clear", false, "Clear existing data before loading")
		noQueryLog = flag.Bool("no-query-log", false, "Disable query logging during simulation")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	if err := database.InitializeWithOptions(&cfg.Database, *noQueryLog); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	db := database.GetDB()

	log.Println("✅ Connected to database successfully")

	// Parse the start date
	start, err := time.Parse("2006-01-02", *startDate)
	if err != nil {
		log.Fatalf("Invalid start date: %v", err)
	}
	end := start.AddDate(0, 0, *days-1)

	// Clear existing data if requested
	if *clear {
		if err := clearData(db); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("✅ Cleared existing data")
	}

	// Warn when orders already exist; the loader would skip the insert
	if !*clear && hasExistingData(db) {
		log.Println("⚠️  Warning: the database already holds orders.")
		log.Println("   Use -clear to remove existing data before running.")
	}

	// Generate the dataset. The generator is deterministic, so the same
	// seed and window always produce the same orders.
	log.Printf("Generating %d trading days starting %s (seed %d)",
		*days, start.Format("2006-01-02"), *randSeed)

	ds := loader.Generate(loader.GenerateConfig{
		Seed:      *randSeed,
		StartDate: start,
		Days:      *days,
		Customers: *customers,
		DailyBase: *daily,
	})

	if err := database.SeedDataset(db, ds); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	log.Println("✅ Simulation completed successfully!")
	printStatistics(db, start, end)
}

// clearData removes every row so the generated dataset can load into an
// empty warehouse. Tables go in reverse dependency order.
func clearData(db *gorm.DB) error {
	tables := []string{
		"order_items", "orders", "stocks", "staffs", "products",
		"customers", "stores", "categories", "brands",
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			if err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
}

// hasExistingData checks whether any orders are already loaded.
func hasExistingData(db *gorm.DB) bool {
	var count int64
	db.Model(&models.Order{}).Count(&count)
	return count > 0
}

// printStatistics prints summary statistics for the generated window.
func printStatistics(db *gorm.DB, start, end time.Time) {
	fmt.Println("\n╔══════════════════════════════════════════════╗")
	fmt.Println("║          SIMULATION STATISTICS               ║")
	fmt.Println("╚══════════════════════════════════════════════╝")

	// Orders by status
	type StatusCount struct {
		OrderStatus string
		Count       int64
	}
	var statusCounts []StatusCount
	db.Model(&models.Order{}).
		Select("order_status, COUNT(*) as count").
		Where("order_date BETWEEN ? AND ?", start, end).
		Group("order_status").
		Order("count DESC").
		Scan(&statusCounts)

	var totalOrders int64
	fmt.Printf("\n📦 ORDERS\n")
	for _, s := range statusCounts {
		fmt.Printf("   %-12s %d\n", s.OrderStatus+":", s.Count)
		totalOrders += s.Count
	}
	fmt.Printf("   %-12s %d\n", "total:", totalOrders)

	// Revenue over the window
	var revenue struct {
		Lines int64
		Total float64
	}
	db.Table("order_items oi").
		Select("COUNT(*) as lines, COALESCE(SUM(oi.quantity * oi.list_price * (1 - oi.discount)), 0) as total").
		Joins("JOIN orders o ON oi.order_id = o.order_id").
		Where("o.order_date BETWEEN ? AND ?", start, end).
		Scan(&revenue)

	fmt.Printf("\n💰 REVENUE\n")
	fmt.Printf("   Order Lines:   %d\n", revenue.Lines)
	fmt.Printf("   Net Sales:     %.2f\n", revenue.Total)

	// Top selling products
	type TopProduct struct {
		ProductName string
		TotalQty    int64
		TotalValue  float64
	}
	var topProducts []TopProduct
	db.Table("order_items oi").
		Select(`
			p.product_name,
			SUM(oi.quantity) as total_qty,
			SUM(oi.quantity * oi.list_price * (1 - oi.discount)) as total_value
		`).
		Joins("JOIN orders o ON oi.order_id = o.order_id").
		Joins("JOIN products p ON oi.product_id = p.product_id").
		Where("o.order_date BETWEEN ? AND ?", start, end).
		Group("p.product_id, p.product_name").
		Order("total_value DESC").
		Limit(5).
		Scan(&topProducts)

	fmt.Printf("\n🏆 TOP 5 BEST SELLING PRODUCTS\n")
	for i, p := range topProducts {
		fmt.Printf("   %d. %-30s Qty: %4d  Revenue: %.2f\n",
			i+1, p.ProductName, p.TotalQty, p.TotalValue)
	}

	// Daily averages
	days := int(end.Sub(start).Hours()/24) + 1
	if days > 0 {
		fmt.Printf("\n📈 DAILY AVERAGES\n")
		fmt.Printf("   Net sales per day:   %.2f\n", revenue.Total/float64(days))
		fmt.Printf("   Orders per day:      %.1f\n", float64(totalOrders)/float64(days))
	}

	fmt.Println("\n" + strings.Repeat("═", 50))
}
