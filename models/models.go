package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Category{}, // self-reference handled in a second pass
		&User{},

		// 2. Tables with single dependencies
		&Product{}, // depends on: Category

		// 3. Tables with multiple dependencies
		&Order{},    // depends on: User
		&CartItem{}, // session-scoped, references Product

		// 4. Detail tables
		&OrderItem{}, // depends on: Order, Product
	}
}
