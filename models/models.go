package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Brand{},
		&Category{},
		&Store{},
		&Customer{},

		// 2. Tables with single dependencies
		&Product{}, // depends on: Brand, Category
		&Staff{},   // depends on: Store (and itself via manager_id)

		// 3. Tables with multiple dependencies
		&Stock{}, // depends on: Store, Product
		&Order{}, // depends on: Customer, Store, Staff

		// 4. Detail tables
		&OrderItem{}, // depends on: Order, Product
	}
}
