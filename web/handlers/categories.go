package handlers

import (
	"errors"
	"fmt"

	"github.com/dentalshop/database"
	"github.com/dentalshop/models"
	"github.com/dentalshop/shop"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CategoryList returns root categories with their subcategories.
func CategoryList(c *fiber.Ctx) error {
	db := database.GetDB()

	var categories []models.Category
	err := db.Where("parent_id IS NULL").
		Preload("SubCategories").
		Order("category_name").
		Find(&categories).Error
	if err != nil {
		return err
	}

	return c.JSON(categories)
}

// CategoryView returns one category with its subcategories.
func CategoryView(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category id"})
	}

	var category models.Category
	err = db.Preload("SubCategories").First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("category %d: %w", id, shop.ErrNotFound)
	}
	if err != nil {
		return err
	}

	return c.JSON(category)
}

// CategoryProducts returns the products of one category.
func CategoryProducts(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category id"})
	}

	var products []models.Product
	err = db.Where("category_id = ?", id).
		Order("updated_at DESC").
		Find(&products).Error
	if err != nil {
		return err
	}

	return c.JSON(products)
}

type categoryRequest struct {
	CategoryName string `json:"category_name"`
	ParentID     *uint  `json:"parent_id"`
}

// validateCategoryParent enforces the two-level taxonomy: a parent must
// exist and must itself be a root category.
func validateCategoryParent(db *gorm.DB, parentID *uint) error {
	if parentID == nil {
		return nil
	}

	var parent models.Category
	err := db.First(&parent, *parentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("parent category %d: %w", *parentID, shop.ErrNotFound)
	}
	if err != nil {
		return err
	}
	if !parent.IsRoot() {
		return fmt.Errorf("%w: category tree is limited to two levels", shop.ErrValidation)
	}
	return nil
}

// CategoryCreate creates a category or subcategory.
func CategoryCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.CategoryName == "" {
		return fmt.Errorf("%w: category_name is required", shop.ErrValidation)
	}
	if err := validateCategoryParent(db, req.ParentID); err != nil {
		return err
	}

	category := models.Category{
		CategoryName: req.CategoryName,
		ParentID:     req.ParentID,
	}
	if err := db.Create(&category).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// CategoryUpdate updates a category's name or parent.
func CategoryUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category id"})
	}

	var category models.Category
	err = db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("category %d: %w", id, shop.ErrNotFound)
	}
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.CategoryName == "" {
		return fmt.Errorf("%w: category_name is required", shop.ErrValidation)
	}
	if req.ParentID != nil && *req.ParentID == category.CategoryID {
		return fmt.Errorf("%w: category cannot be its own parent", shop.ErrValidation)
	}
	if err := validateCategoryParent(db, req.ParentID); err != nil {
		return err
	}

	// A root with subcategories cannot be demoted under another root
	if req.ParentID != nil {
		var children int64
		if err := db.Model(&models.Category{}).Where("parent_id = ?", category.CategoryID).Count(&children).Error; err != nil {
			return err
		}
		if children > 0 {
			return fmt.Errorf("%w: category with subcategories must stay at the root", shop.ErrValidation)
		}
	}

	category.CategoryName = req.CategoryName
	category.ParentID = req.ParentID
	if err := db.Save(&category).Error; err != nil {
		return err
	}

	return c.JSON(category)
}

// CategoryDelete removes a category. Deletion is restricted: a category
// that still has products or subcategories is not deleted.
func CategoryDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category id"})
	}

	var category models.Category
	err = db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("category %d: %w", id, shop.ErrNotFound)
	}
	if err != nil {
		return err
	}

	var products int64
	if err := db.Model(&models.Product{}).Where("category_id = ?", id).Count(&products).Error; err != nil {
		return err
	}
	if products > 0 {
		return fmt.Errorf("%w: category still has %d products", shop.ErrConflict, products)
	}

	var children int64
	if err := db.Model(&models.Category{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
		return err
	}
	if children > 0 {
		return fmt.Errorf("%w: category still has %d subcategories", shop.ErrConflict, children)
	}

	if err := db.Delete(&category).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
