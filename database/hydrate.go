package database

import (
	"fmt"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/loader"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"

	"gorm.io/gorm"
)

// Hydrate reads every entity table into a fresh in-memory store. Rows load
// through the same dependency-ordered path as file datasets, so a database
// that violates the referential rules is rejected rather than half-loaded.
func Hydrate(db *gorm.DB) (*store.EntityStore, error) {
	ds := loader.Dataset{Name: "database"}

	if err := db.Order("brand_id").Find(&ds.Brands).Error; err != nil {
		return nil, fmt.Errorf("load brands: %w", err)
	}
	if err := db.Order("category_id").Find(&ds.Categories).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if err := db.Order("store_id").Find(&ds.Stores).Error; err != nil {
		return nil, fmt.Errorf("load stores: %w", err)
	}
	if err := db.Order("customer_id").Find(&ds.Customers).Error; err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	if err := db.Order("product_id").Find(&ds.Products).Error; err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if err := db.Order("staff_id").Find(&ds.Staff).Error; err != nil {
		return nil, fmt.Errorf("load staffs: %w", err)
	}
	if err := db.Order("store_id, product_id").Find(&ds.Stocks).Error; err != nil {
		return nil, fmt.Errorf("load stocks: %w", err)
	}
	if err := db.Order("order_id").Find(&ds.Orders).Error; err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if err := db.Order("order_id, item_id").Find(&ds.OrderItems).Error; err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}

	st := store.New()
	if _, err := loader.Load(st, ds); err != nil {
		return nil, err
	}
	return st, nil
}
