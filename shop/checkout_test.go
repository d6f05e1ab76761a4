package shop

import (
	"testing"
	"time"

	"github.com/dentalshop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() map[uint]models.Product {
	return map[uint]models.Product{
		1: {ProductID: 1, ProductName: "Зеркало стоматологическое", Price: 1000},
		2: {ProductID: 2, ProductName: "Зонд диагностический", Price: 500},
	}
}

func deliveryRequest() CheckoutRequest {
	addr := "ул. Пушкина, 25"
	return CheckoutRequest{
		UserID:         1,
		DeliveryType:   models.DeliveryCourier,
		DeliveryAt:     time.Now().Add(24 * time.Hour),
		RecipientName:  "Др. Иван Петров",
		RecipientPhone: "+998901234567",
		Address:        &addr,
	}
}

func TestBuildOrderTotals(t *testing.T) {
	lines := []CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}

	order, err := BuildOrder(lines, testProducts(), deliveryRequest(), 500)
	require.NoError(t, err)

	// subtotal 2*1000 + 1*500 = 2500, plus delivery fee 500
	assert.Equal(t, int64(3000), order.Total)
	assert.Equal(t, models.StatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(2500), Subtotal(order.Items))
}

func TestBuildOrderSnapshotsProducts(t *testing.T) {
	products := testProducts()
	lines := []CartLine{{ProductID: 1, Quantity: 1}}

	order, err := BuildOrder(lines, products, deliveryRequest(), 500)
	require.NoError(t, err)

	// A later price change must not leak into the created order.
	p := products[1]
	p.Price = 99999
	p.ProductName = "renamed"
	products[1] = p

	assert.Equal(t, int64(1000), order.Items[0].Price)
	assert.Equal(t, "Зеркало стоматологическое", order.Items[0].Name)
	assert.Equal(t, int64(1500), order.Total)
}

func TestBuildOrderEmptyCart(t *testing.T) {
	_, err := BuildOrder(nil, testProducts(), deliveryRequest(), 500)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildOrderUnknownProduct(t *testing.T) {
	lines := []CartLine{{ProductID: 42, Quantity: 1}}

	_, err := BuildOrder(lines, testProducts(), deliveryRequest(), 500)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuildOrderRejectsNonPositiveQuantity(t *testing.T) {
	lines := []CartLine{{ProductID: 1, Quantity: 0}}

	_, err := BuildOrder(lines, testProducts(), deliveryRequest(), 500)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckoutRequestValidation(t *testing.T) {
	lines := []CartLine{{ProductID: 1, Quantity: 1}}

	t.Run("delivery requires address", func(t *testing.T) {
		req := deliveryRequest()
		req.Address = nil
		_, err := BuildOrder(lines, testProducts(), req, 500)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("pickup needs no address", func(t *testing.T) {
		req := deliveryRequest()
		req.DeliveryType = models.DeliveryPickup
		req.Address = nil
		_, err := BuildOrder(lines, testProducts(), req, 500)
		assert.NoError(t, err)
	})

	t.Run("unknown delivery type", func(t *testing.T) {
		req := deliveryRequest()
		req.DeliveryType = "DRONE"
		_, err := BuildOrder(lines, testProducts(), req, 500)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing recipient", func(t *testing.T) {
		req := deliveryRequest()
		req.RecipientName = ""
		_, err := BuildOrder(lines, testProducts(), req, 500)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing user", func(t *testing.T) {
		req := deliveryRequest()
		req.UserID = 0
		_, err := BuildOrder(lines, testProducts(), req, 500)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestBuildOrderConfigurableFee(t *testing.T) {
	lines := []CartLine{{ProductID: 2, Quantity: 1}}

	order, err := BuildOrder(lines, testProducts(), deliveryRequest(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(500), order.Total)

	order, err = BuildOrder(lines, testProducts(), deliveryRequest(), 1200)
	require.NoError(t, err)
	assert.Equal(t, int64(1700), order.Total)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "2500 y.e", FormatPrice(2500))
	assert.Equal(t, "0 y.e", FormatPrice(0))
}
