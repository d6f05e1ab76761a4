package database

import (
	"fmt"
	"log"

	"github.com/dentalshop/models"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	migrator := db.Migrator()

	// First pass: create tables in dependency order
	for _, model := range models.AllModels() {
		if migrator.HasTable(model) {
			continue
		}
		if err := migrator.CreateTable(model); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
		log.Printf("  created table for %T", model)
	}

	// Second pass: constraints GORM's single-pass migration trips over,
	// the self-referencing category FK in particular
	if err := createForeignKeys(db); err != nil {
		log.Printf("Warning: some foreign keys could not be created: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

func createForeignKeys(db *gorm.DB) error {
	foreignKeys := []struct {
		table      string
		name       string
		definition string
	}{
		{"categories", "fk_categories_parent",
			"FOREIGN KEY (parent_id) REFERENCES categories(category_id)"},
		{"products", "fk_products_category",
			"FOREIGN KEY (category_id) REFERENCES categories(category_id)"},
		{"orders", "fk_orders_user",
			"FOREIGN KEY (user_id) REFERENCES users(user_id)"},
		{"order_items", "fk_order_items_order",
			"FOREIGN KEY (order_id) REFERENCES orders(order_id) ON DELETE CASCADE"},
	}

	for _, fk := range foreignKeys {
		var exists bool
		err := db.Raw(`
			SELECT EXISTS(
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = ? AND table_name = ?
			)
		`, fk.name, fk.table).Scan(&exists).Error
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		sql := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", fk.table, fk.name, fk.definition)
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("  warning: could not add %s: %v", fk.name, err)
			continue
		}
		log.Printf("  added constraint %s", fk.name)
	}
	return nil
}

// DropAll drops every managed table, child tables first
func DropAll(db *gorm.DB) error {
	all := models.AllModels()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", all[i], err)
		}
	}
	return nil
}
