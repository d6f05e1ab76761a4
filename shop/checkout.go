package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dentalshop/models"
	"gorm.io/gorm"
)

// CheckoutRequest carries everything the customer submits at checkout.
type CheckoutRequest struct {
	UserID         uint                `json:"user_id"`
	DeliveryType   models.DeliveryType `json:"delivery_type"`
	DeliveryAt     time.Time           `json:"delivery_at"`
	RecipientName  string              `json:"recipient_name"`
	RecipientPhone string              `json:"recipient_phone"`
	Address        *string             `json:"address,omitempty"`
	Apartment      *string             `json:"apartment,omitempty"`
	Entrance       *string             `json:"entrance,omitempty"`
	Room           *string             `json:"room,omitempty"`
	// IdempotencyKey lets a client retry checkout without creating a
	// duplicate order. Optional.
	IdempotencyKey *string `json:"idempotency_key,omitempty"`
}

// Validate checks the fields the server must not trust the client on.
func (r *CheckoutRequest) Validate() error {
	if r.UserID == 0 {
		return fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if r.RecipientName == "" {
		return fmt.Errorf("%w: recipient_name is required", ErrValidation)
	}
	if r.RecipientPhone == "" {
		return fmt.Errorf("%w: recipient_phone is required", ErrValidation)
	}
	switch r.DeliveryType {
	case models.DeliveryCourier:
		if r.Address == nil || *r.Address == "" {
			return fmt.Errorf("%w: address is required for delivery", ErrValidation)
		}
	case models.DeliveryPickup:
		// No address needed.
	default:
		return fmt.Errorf("%w: delivery_type must be DELIVERY or PICKUP", ErrValidation)
	}
	return nil
}

// Subtotal sums line totals over already-snapshotted items.
func Subtotal(items []models.OrderItem) int64 {
	var sum int64
	for _, item := range items {
		sum += item.Subtotal()
	}
	return sum
}

// BuildOrder assembles an order from cart lines and the live products they
// reference. Each line becomes an immutable snapshot of the product's name
// and price; the total is fixed here and never derived from the product
// again. products must contain every referenced product.
func BuildOrder(lines []CartLine, products map[uint]models.Product, req CheckoutRequest, deliveryFee int64) (models.Order, error) {
	if err := req.Validate(); err != nil {
		return models.Order{}, err
	}
	if len(lines) == 0 {
		return models.Order{}, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return models.Order{}, fmt.Errorf("%w: quantity for product %d must be positive", ErrValidation, line.ProductID)
		}
		product, ok := products[line.ProductID]
		if !ok {
			return models.Order{}, fmt.Errorf("product %d: %w", line.ProductID, ErrNotFound)
		}
		items = append(items, models.OrderItem{
			ProductID: product.ProductID,
			Name:      product.ProductName,
			Price:     product.Price,
			Quantity:  line.Quantity,
		})
	}

	order := models.Order{
		UserID:         req.UserID,
		Status:         models.StatusPending,
		Total:          Subtotal(items) + deliveryFee,
		DeliveryType:   req.DeliveryType,
		DeliveryAt:     req.DeliveryAt,
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
		Address:        req.Address,
		Apartment:      req.Apartment,
		Entrance:       req.Entrance,
		Room:           req.Room,
		IdempotencyKey: req.IdempotencyKey,
		Items:          items,
	}
	return order, nil
}

// Checkout materializes the session cart into a persisted order. The cart
// is cleared only after the order transaction commits; any failure leaves
// it untouched. A repeated idempotency key returns the already-created
// order instead of a duplicate.
func (s *Service) Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*models.Order, error) {
	if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
		var existing models.Order
		err := s.db.WithContext(ctx).
			Preload("Items").
			Where("idempotency_key = ?", *req.IdempotencyKey).
			First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	lines, err := s.carts.Get(sessionID)
	if err != nil {
		return nil, err
	}

	products := make(map[uint]models.Product, len(lines))
	for _, line := range lines {
		var product models.Product
		err := s.db.WithContext(ctx).First(&product, line.ProductID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", line.ProductID, ErrNotFound)
		}
		if err != nil {
			return nil, err
		}
		products[product.ProductID] = product
	}

	order, err := BuildOrder(lines, products, req, s.cfg.DeliveryFee)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		return nil, err
	}

	// At-most-once: the order exists, so the cart must go. A failure here
	// is logged by the caller but does not undo the order.
	if err := s.carts.Clear(sessionID); err != nil {
		return &order, fmt.Errorf("order %d created but cart not cleared: %w", order.OrderID, err)
	}

	return &order, nil
}
