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

// ProductList returns products, optionally filtered by category and a
// name search, sorted by the sort parameter.
func ProductList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.Product{}).Preload("Category").Preload("Category.Parent")

	if categoryID := c.QueryInt("category_id", 0); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if q := c.Query("q", ""); q != "" {
		query = query.Where("product_name ILIKE ?", "%"+q+"%")
	}

	switch c.Query("sort", "newest") {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "name":
		query = query.Order("product_name ASC")
	default:
		query = query.Order("updated_at DESC")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(products)
}

// ProductView returns one product.
func ProductView(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	var product models.Product
	err = db.Preload("Category").First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %d: %w", id, shop.ErrNotFound)
	}
	if err != nil {
		return err
	}

	return c.JSON(product)
}

type productRequest struct {
	ProductName string  `json:"product_name"`
	Description *string `json:"description"`
	Price       int64   `json:"price"`
	ImageURL    *string `json:"image_url"`
	CategoryID  uint    `json:"category_id"`
}

func (r *productRequest) validate(db *gorm.DB) error {
	if r.ProductName == "" {
		return fmt.Errorf("%w: product_name is required", shop.ErrValidation)
	}
	if r.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", shop.ErrValidation)
	}
	if r.CategoryID == 0 {
		return fmt.Errorf("%w: category_id is required", shop.ErrValidation)
	}

	var category models.Category
	err := db.First(&category, r.CategoryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("category %d: %w", r.CategoryID, shop.ErrNotFound)
	}
	return err
}

// ProductCreate creates a new product.
func ProductCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.validate(db); err != nil {
		return err
	}

	product := models.Product{
		ProductName: req.ProductName,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}
	if err := db.Create(&product).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// ProductUpdate updates a product. Existing order items keep the name and
// price they snapshotted at checkout.
func ProductUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	var product models.Product
	err = db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %d: %w", id, shop.ErrNotFound)
	}
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.validate(db); err != nil {
		return err
	}

	product.ProductName = req.ProductName
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	product.CategoryID = req.CategoryID
	if err := db.Save(&product).Error; err != nil {
		return err
	}

	return c.JSON(product)
}

// ProductDelete removes a product from the catalog. Historical orders are
// unaffected because order items are snapshots.
func ProductDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	result := db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, shop.ErrNotFound)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
