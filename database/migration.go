package database

import (
	"fmt"
	"strings"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/analytics"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all entity and view tables
func AutoMigrate(db *gorm.DB) error {
	sugar := zap.S()
	sugar.Info("Starting GORM AutoMigrate...")

	allTables := append(models.AllModels(), analytics.ViewModels()...)

	// First pass: Create all tables WITHOUT foreign keys
	sugar.Info("Creating tables without foreign keys...")
	migrator := db.Migrator()

	for _, model := range allTables {
		tableName := migrator.CurrentDatabase()
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err == nil {
			tableName = stmt.Schema.Table
		}

		if !migrator.HasTable(model) {
			if err := migrator.CreateTable(model); err != nil {
				sugar.Warnf("  ⚠ Could not create table %s: %v", tableName, err)
				continue
			}
			sugar.Infof("  ✓ Created table: %s", tableName)
		} else {
			sugar.Infof("  ✓ Table already exists: %s", tableName)
		}
	}

	// Second pass: Create foreign key constraints manually
	sugar.Info("Creating foreign key constraints...")
	if err := CreateForeignKeys(db); err != nil {
		sugar.Warnf("Some foreign keys could not be created: %v", err)
	}

	// Add check constraints that mirror the in-memory insert rules
	sugar.Info("Adding custom constraints...")
	if err := AddCustomConstraints(db); err != nil {
		sugar.Warnf("Some custom constraints could not be added: %v", err)
	}

	// Create indexes
	sugar.Info("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		sugar.Warnf("Some indexes could not be created: %v", err)
	}

	sugar.Info("GORM AutoMigrate completed successfully")
	return nil
}

// CreateForeignKeys creates all foreign key constraints
func CreateForeignKeys(db *gorm.DB) error {
	sugar := zap.S()
	foreignKeys := []struct {
		table     string
		name      string
		column    string
		refTable  string
		refColumn string
		onDelete  string
	}{
		// Product relationships
		{"products", "fk_products_brand", "brand_id", "brands", "brand_id", ""},
		{"products", "fk_products_category", "category_id", "categories", "category_id", ""},

		// Stock per store and product
		{"stocks", "fk_stocks_store", "store_id", "stores", "store_id", ""},
		{"stocks", "fk_stocks_product", "product_id", "products", "product_id", ""},

		// Staff assignment and reporting chain
		{"staffs", "fk_staffs_store", "store_id", "stores", "store_id", ""},
		{"staffs", "fk_staffs_manager", "manager_id", "staffs", "staff_id", "SET NULL"},

		// Orders
		{"orders", "fk_orders_customer", "customer_id", "customers", "customer_id", ""},
		{"orders", "fk_orders_store", "store_id", "stores", "store_id", ""},
		{"orders", "fk_orders_staff", "staff_id", "staffs", "staff_id", ""},

		// Order items ride on their order
		{"order_items", "fk_order_items_order", "order_id", "orders", "order_id", "CASCADE"},
		{"order_items", "fk_order_items_product", "product_id", "products", "product_id", ""},
	}

	for _, fk := range foreignKeys {
		// Check if foreign key already exists
		var count int64
		db.Raw(`
			SELECT COUNT(*) FROM information_schema.table_constraints
			WHERE constraint_type = 'FOREIGN KEY'
			AND table_name = ?
			AND constraint_name = ?
		`, fk.table, fk.name).Scan(&count)

		if count > 0 {
			sugar.Infof("  ✓ Foreign key already exists: %s", fk.name)
			continue
		}

		query := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s)",
			fk.table, fk.name, fk.column, fk.refTable, fk.refColumn,
		)
		if fk.onDelete != "" {
			query += " ON DELETE " + fk.onDelete
		}

		if err := db.Exec(query).Error; err != nil {
			sugar.Warnf("  ⚠ Failed to create foreign key %s: %v", fk.name, err)
		} else {
			sugar.Infof("  ✓ Created foreign key: %s", fk.name)
		}
	}

	return nil
}

// AddCustomConstraints adds database constraints that GORM doesn't handle automatically.
// These are the same rules the in-memory store enforces on insert, so a database
// seeded through any path stays loadable.
func AddCustomConstraints(db *gorm.DB) error {
	sugar := zap.S()
	constraints := []struct {
		name  string
		query string
	}{
		{"check_product_price", "ALTER TABLE products ADD CONSTRAINT check_product_price CHECK (list_price > 0)"},
		{"check_product_model_year", "ALTER TABLE products ADD CONSTRAINT check_product_model_year CHECK (model_year BETWEEN 1900 AND 2100)"},
		{"check_stock_quantity", "ALTER TABLE stocks ADD CONSTRAINT check_stock_quantity CHECK (quantity >= 0)"},
		{"check_item_quantity", "ALTER TABLE order_items ADD CONSTRAINT check_item_quantity CHECK (quantity > 0)"},
		{"check_item_price", "ALTER TABLE order_items ADD CONSTRAINT check_item_price CHECK (list_price > 0)"},
		{"check_item_discount", "ALTER TABLE order_items ADD CONSTRAINT check_item_discount CHECK (discount >= 0 AND discount <= 1)"},
		{"check_order_status", "ALTER TABLE orders ADD CONSTRAINT check_order_status CHECK (order_status IN ('pending', 'processing', 'rejected', 'completed'))"},
	}

	for _, c := range constraints {
		if err := db.Exec(c.query).Error; err != nil {
			// Check if constraint already exists (PostgreSQL error code 42710)
			if !strings.Contains(err.Error(), "already exists") && !strings.Contains(err.Error(), "42710") {
				sugar.Warnf("  ⚠ Failed to add constraint %s: %v", c.name, err)
			}
		} else {
			sugar.Infof("  ✓ Added constraint: %s", c.name)
		}
	}

	return nil
}

// CreateIndexes creates performance indexes
func CreateIndexes(db *gorm.DB) error {
	sugar := zap.S()
	indexes := []struct {
		name  string
		query string
	}{
		// Product indexes
		{"idx_products_brand", "CREATE INDEX IF NOT EXISTS idx_products_brand ON products(brand_id)"},
		{"idx_products_category", "CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)"},

		// Stock indexes
		{"idx_stocks_product", "CREATE INDEX IF NOT EXISTS idx_stocks_product ON stocks(product_id)"},

		// Staff indexes
		{"idx_staffs_store", "CREATE INDEX IF NOT EXISTS idx_staffs_store ON staffs(store_id)"},
		{"idx_staffs_manager", "CREATE INDEX IF NOT EXISTS idx_staffs_manager ON staffs(manager_id)"},

		// Order indexes
		{"idx_orders_customer", "CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id)"},
		{"idx_orders_store", "CREATE INDEX IF NOT EXISTS idx_orders_store ON orders(store_id)"},
		{"idx_orders_staff", "CREATE INDEX IF NOT EXISTS idx_orders_staff ON orders(staff_id)"},
		{"idx_orders_date", "CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(order_date)"},
		{"idx_order_items_product", "CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)"},
	}

	successCount := 0
	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			sugar.Warnf("  ⚠ Failed to create index %s: %v", idx.name, err)
		} else {
			sugar.Infof("  ✓ Created index: %s", idx.name)
			successCount++
		}
	}

	if successCount > 0 {
		sugar.Infof("Successfully created %d indexes", successCount)
	}

	return nil
}
