package database

import (
	"fmt"
	"log"

	"github.com/dentalshop/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// SeedData populates the database with sample catalog data and users.
// Safe to run more than once: it skips seeding when categories exist.
func SeedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedCatalog(tx); err != nil {
			return err
		}
		return seedUsers(tx)
	})
}

func seedCatalog(tx *gorm.DB) error {
	// Two-level taxonomy: root category -> subcategories -> products
	catalog := []struct {
		root     string
		children map[string][]models.Product
	}{
		{
			root: "Инструменты",
			children: map[string][]models.Product{
				"Зеркала и зонды": {
					{ProductName: "Зеркало стоматологическое №4", Price: 1200},
					{ProductName: "Зонд диагностический изогнутый", Price: 900},
				},
				"Щипцы и элеваторы": {
					{ProductName: "Щипцы экстракционные верхние", Price: 5400},
					{ProductName: "Элеватор прямой 3мм", Price: 3100},
				},
			},
		},
		{
			root: "Материалы",
			children: map[string][]models.Product{
				"Пломбировочные": {
					{ProductName: "Композит светоотверждаемый A2", Price: 8900, Description: strPtr("Шприц 4 г")},
					{ProductName: "Стеклоиономерный цемент", Price: 4700},
				},
				"Оттискные": {
					{ProductName: "Альгинатная масса 450 г", Price: 2600},
				},
			},
		},
		{
			root: "Расходники",
			children: map[string][]models.Product{
				"Перчатки и маски": {
					{ProductName: "Перчатки нитриловые M, 100 шт", Price: 1500},
					{ProductName: "Маски трехслойные, 50 шт", Price: 800},
				},
			},
		},
	}

	for _, group := range catalog {
		root := models.Category{CategoryName: group.root}
		if err := tx.Create(&root).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", group.root, err)
		}

		for childName, products := range group.children {
			child := models.Category{CategoryName: childName, ParentID: &root.CategoryID}
			if err := tx.Create(&child).Error; err != nil {
				return fmt.Errorf("failed to seed subcategory %s: %w", childName, err)
			}

			for _, product := range products {
				product.CategoryID = child.CategoryID
				if err := tx.Create(&product).Error; err != nil {
					return fmt.Errorf("failed to seed product %s: %w", product.ProductName, err)
				}
			}
		}
	}

	log.Println("Seeded catalog")
	return nil
}

func seedUsers(tx *gorm.DB) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	customerHash, err := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{
			FullName:     "Администратор",
			Phone:        "+998900000001",
			Email:        strPtr("admin@dentalshop.local"),
			PasswordHash: string(adminHash),
			Role:         models.RoleAdmin,
		},
		{
			FullName:     "Др. Иван Петров",
			Phone:        "+998901234567",
			PasswordHash: string(customerHash),
			Role:         models.RoleCustomer,
			Address:      strPtr("ул. Пушкина, 25"),
			Apartment:    strPtr("3"),
			Entrance:     strPtr("1"),
			Room:         strPtr("6"),
		},
	}

	for i := range users {
		if err := tx.Create(&users[i]).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", users[i].FullName, err)
		}
	}

	log.Println("Seeded users")
	return nil
}
