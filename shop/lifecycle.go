package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dentalshop/models"
	"gorm.io/gorm"
)

// ApplyTransition moves an order to next in place. With strict enabled
// only moves allowed by the transition table pass; re-setting the current
// status is always a no-op move that still bumps UpdatedAt, so the call is
// idempotent with respect to the final state.
func ApplyTransition(order *models.Order, next models.OrderStatus, strict bool, now time.Time) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, next)
	}
	if strict && !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, next)
	}
	order.Status = next
	order.UpdatedAt = now
	return nil
}

// UpdateOrderStatus transitions the order with the given id and persists
// the result. Returns ErrNotFound for a missing id and
// ErrIllegalTransition when the strict flow rejects the move.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID uint, next models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := ApplyTransition(&order, next, s.cfg.StrictStatusFlow, time.Now()); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(&order).
		Select("status", "updated_at").
		Updates(map[string]interface{}{
			"status":     order.Status,
			"updated_at": order.UpdatedAt,
		}).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}
