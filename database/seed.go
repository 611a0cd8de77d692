package database

import (
	"fmt"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/loader"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedData loads the built-in sample dataset into empty entity tables.
func SeedData(db *gorm.DB) error {
	return SeedDataset(db, loader.Sample())
}

// SeedDataset inserts a dataset inside one transaction, in dependency order.
// The dataset passes through an in-memory store first, so rows that would
// break the referential rules never reach the database.
func SeedDataset(db *gorm.DB, ds loader.Dataset) error {
	sugar := zap.S()
	sugar.Info("Checking if database needs seeding...")

	// Check if data already exists
	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count > 0 {
		sugar.Info("Database already has data. Skipping seed.")
		return nil
	}

	if err := validateDataset(ds); err != nil {
		return err
	}

	sugar.Infof("Database is empty. Seeding dataset %q...", ds.Name)

	err := db.Transaction(func(tx *gorm.DB) error {
		if len(ds.Brands) > 0 {
			if err := tx.Create(&ds.Brands).Error; err != nil {
				return fmt.Errorf("failed to seed brands: %w", err)
			}
			sugar.Infof("  ✓ Seeded %d brands", len(ds.Brands))
		}
		if len(ds.Categories) > 0 {
			if err := tx.Create(&ds.Categories).Error; err != nil {
				return fmt.Errorf("failed to seed categories: %w", err)
			}
			sugar.Infof("  ✓ Seeded %d categories", len(ds.Categories))
		}
		if len(ds.Stores) > 0 {
			if err := tx.Create(&ds.Stores).Error; err != nil {
				return fmt.Errorf("failed to seed stores: %w", err)
			}
			sugar.Infof("  ✓ Seeded %d stores", len(ds.Stores))
		}
		if len(ds.Customers) > 0 {
			if err := tx.Create(&ds.Customers).Error; err != nil {
				return fmt.Errorf("failed to seed customers: %w", err)
			}
			sugar.Infof("  ✓ Seeded %d customers", len(ds.Customers))
		}
		if len(ds.Products) > 0 {
			if err := tx.Create(&ds.Products).Error; err != nil {
				return fmt.Errorf("failed to seed products: %w", err)
			}
			sugar.Infof("  ✓ Seeded %d products", len(ds.Products))
		}
		if len(ds.Staff) > 0 {
			// Row-by-row so the self-referencing manager key is satisfied
			// as long as managers precede their reports.
			for i := range ds.Staff {
				if err := tx.Create(&ds.Staff[i]).Error; err != nil {
					return fmt.Errorf("failed to seed staffs: %w", err)
				}
			}
			sugar.Infof("  ✓ Seeded %d staffs", len(ds.Staff))
		}
		if len(ds.Stocks) > 0 {
			if err := tx.Create(&ds.Stocks).Error; err != nil {
				return fmt.Errorf("failed to seed stocks: %w", err)
			}
			sugar.Infof("  ✓ Seeded %d stocks", len(ds.Stocks))
		}
		if len(ds.Orders) > 0 {
			if err := tx.Create(&ds.Orders).Error; err != nil {
				return fmt.Errorf("failed to seed orders: %w", err)
			}
			sugar.Infof("  ✓ Seeded %d orders", len(ds.Orders))
		}
		if len(ds.OrderItems) > 0 {
			if err := tx.Create(&ds.OrderItems).Error; err != nil {
				return fmt.Errorf("failed to seed order items: %w", err)
			}
			sugar.Infof("  ✓ Seeded %d order items", len(ds.OrderItems))
		}
		return nil
	})
	if err != nil {
		return err
	}

	sugar.Info("✅ Database seeded successfully!")
	return nil
}

// validateDataset runs the dataset through a throwaway in-memory store.
func validateDataset(ds loader.Dataset) error {
	_, err := loader.Load(store.New(), ds)
	return err
}
