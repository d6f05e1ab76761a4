package handlers

import (
	"errors"
	"fmt"

	"github.com/dentalshop/database"
	"github.com/dentalshop/models"
	"github.com/dentalshop/shop"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartSessionHeader carries the shopping session identifier. The server
// issues one on the first cart request and echoes it back on every
// response.
const CartSessionHeader = "X-Cart-Session"

func cartSession(c *fiber.Ctx) string {
	sessionID := c.Get(CartSessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Set(CartSessionHeader, sessionID)
	return sessionID
}

type cartLineView struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   *models.Product `json:"product,omitempty"`
	LineTotal int64           `json:"line_total"`
}

// CartView returns the session cart with product details and totals.
func CartView(c *fiber.Ctx) error {
	db := database.GetDB()
	sessionID := cartSession(c)

	lines, err := svc.Carts().Get(sessionID)
	if err != nil {
		return err
	}

	views := make([]cartLineView, 0, len(lines))
	var subtotal int64
	for _, line := range lines {
		view := cartLineView{ProductID: line.ProductID, Quantity: line.Quantity}

		var product models.Product
		err := db.First(&product, line.ProductID).Error
		if err == nil {
			view.Product = &product
			view.LineTotal = product.Price * int64(line.Quantity)
			subtotal += view.LineTotal
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		// A product deleted since it was added stays listed with no
		// details; checkout will reject it.
		views = append(views, view)
	}

	return c.JSON(fiber.Map{
		"session_id":         sessionID,
		"items":              views,
		"subtotal":           subtotal,
		"subtotal_formatted": shop.FormatPrice(subtotal),
		"delivery_fee":       svc.DeliveryFee(),
		"total":              subtotal + svc.DeliveryFee(),
	})
}

type cartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CartAddItem adds a product to the session cart.
func CartAddItem(c *fiber.Ctx) error {
	db := database.GetDB()
	sessionID := cartSession(c)

	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	var product models.Product
	err := db.First(&product, req.ProductID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %d: %w", req.ProductID, shop.ErrNotFound)
	}
	if err != nil {
		return err
	}

	if err := svc.Carts().Add(sessionID, req.ProductID, req.Quantity); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session_id": sessionID})
}

// CartUpdateItem sets the quantity of one cart line. Quantity zero or
// below removes the line.
func CartUpdateItem(c *fiber.Ctx) error {
	sessionID := cartSession(c)

	productID, err := c.ParamsInt("productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := svc.Carts().Update(sessionID, uint(productID), req.Quantity); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"session_id": sessionID})
}

// CartRemoveItem removes one product from the session cart.
func CartRemoveItem(c *fiber.Ctx) error {
	sessionID := cartSession(c)

	productID, err := c.ParamsInt("productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	if err := svc.Carts().Remove(sessionID, uint(productID)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CartClear empties the session cart.
func CartClear(c *fiber.Ctx) error {
	sessionID := cartSession(c)

	if err := svc.Carts().Clear(sessionID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
