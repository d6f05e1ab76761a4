package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/dentalshop/database"
	"github.com/dentalshop/models"
	"github.com/dentalshop/shop"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OrderCreate materializes the session cart into an order (checkout).
func OrderCreate(c *fiber.Ctx) error {
	sessionID := cartSession(c)

	var req shop.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	order, err := svc.Checkout(c.Context(), sessionID, req)
	if err != nil {
		if order != nil {
			// Order exists, only the cart cleanup failed.
			log.Printf("checkout: %v", err)
			return c.Status(fiber.StatusCreated).JSON(order)
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// OrderView returns one order with its items.
func OrderView(c *fiber.Ctx) error {
	db := database.GetDB()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	var order models.Order
	err = db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("order %d: %w", id, shop.ErrNotFound)
	}
	if err != nil {
		return err
	}

	return c.JSON(order)
}

// OrderList returns a user's orders, most recently updated first.
func OrderList(c *fiber.Ctx) error {
	db := database.GetDB()

	userID := c.QueryInt("user_id", 0)
	if userID <= 0 {
		return fmt.Errorf("%w: user_id is required", shop.ErrValidation)
	}

	var orders []models.Order
	err := db.Preload("Items").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&orders).Error
	if err != nil {
		return err
	}

	return c.JSON(orders)
}

// AdminOrderList returns all orders with items and the ordering user's
// name, for the back office.
func AdminOrderList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Preload("Items").Preload("User").Order("updated_at DESC")
	if status := c.Query("status", ""); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(orders)
}

type statusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// OrderUpdateStatus transitions an order to a new status.
func OrderUpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	order, err := svc.UpdateOrderStatus(c.Context(), uint(id), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(order)
}
