package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusProcessing, StatusConfirmed, StatusDelivered, StatusCanceled} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("SHIPPED").Valid())
	assert.False(t, OrderStatus("CANCELLED").Valid(), "only the single-L spelling is canonical")
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCanceled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusProcessing.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.False(t, OrderStatus("SHIPPED").Terminal(), "unknown statuses are not terminal")
}

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{StatusPending, StatusProcessing},
		{StatusPending, StatusCanceled},
		{StatusProcessing, StatusConfirmed},
		{StatusProcessing, StatusCanceled},
		{StatusConfirmed, StatusDelivered},
		{StatusConfirmed, StatusCanceled},
	}
	for _, tt := range allowed {
		assert.True(t, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}

	denied := []struct{ from, to OrderStatus }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusDelivered},
		{StatusDelivered, StatusCanceled},
		{StatusDelivered, StatusPending},
		{StatusCanceled, StatusProcessing},
		{StatusConfirmed, StatusProcessing},
	}
	for _, tt := range denied {
		assert.False(t, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}

	// Self-transition is always allowed.
	for _, s := range []OrderStatus{StatusPending, StatusProcessing, StatusConfirmed, StatusDelivered, StatusCanceled} {
		assert.True(t, s.CanTransitionTo(s), s)
	}
}

func TestOrderStatusCounted(t *testing.T) {
	assert.False(t, StatusPending.Counted())
	assert.False(t, StatusCanceled.Counted())
	assert.True(t, StatusProcessing.Counted())
	assert.True(t, StatusConfirmed.Counted())
	assert.True(t, StatusDelivered.Counted())
}

func TestOrderItemSubtotal(t *testing.T) {
	item := OrderItem{Price: 1000, Quantity: 3}
	assert.Equal(t, int64(3000), item.Subtotal())
}

func TestCategoryIsRoot(t *testing.T) {
	parent := uint(1)
	assert.True(t, (&Category{}).IsRoot())
	assert.False(t, (&Category{ParentID: &parent}).IsRoot())
}
