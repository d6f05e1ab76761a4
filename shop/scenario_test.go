package shop

import (
	"testing"
	"time"

	"github.com/dentalshop/models"
	"github.com/stretchr/testify/suite"
)

// OrderFlowSuite walks one order through the whole lifecycle and checks
// what the dashboard reports at each step.
type OrderFlowSuite struct {
	suite.Suite

	now      time.Time
	products map[uint]models.Product
	carts    *MemoryCartStore
}

func (s *OrderFlowSuite) SetupTest() {
	s.now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	s.products = map[uint]models.Product{
		1: {ProductID: 1, ProductName: "Композит A2", Price: 1000},
		2: {ProductID: 2, ProductName: "Перчатки M", Price: 500},
	}
	s.carts = NewMemoryCartStore()
}

func (s *OrderFlowSuite) TestOrderCountsOnlyAfterLeavingPending() {
	s.Require().NoError(s.carts.Add("session", 1, 2))
	s.Require().NoError(s.carts.Add("session", 2, 1))

	lines, err := s.carts.Get("session")
	s.Require().NoError(err)

	order, err := BuildOrder(lines, s.products, deliveryRequest(), 500)
	s.Require().NoError(err)
	s.Equal(int64(3000), order.Total)
	order.CreatedAt = s.now

	// Freshly created orders sit in PENDING and stay off the dashboard.
	d := ComputeDashboard([]models.Order{order}, 1, 2, s.now)
	s.Equal(int64(0), d.OrdersThisMonth)
	s.Equal(int64(3000), d.ThisMonthRevenue)

	s.Require().NoError(ApplyTransition(&order, models.StatusProcessing, true, s.now.Add(time.Minute)))
	d = ComputeDashboard([]models.Order{order}, 1, 2, s.now)
	s.Equal(int64(1), d.OrdersThisMonth)
	s.Equal(int64(1), d.OrdersToday)

	s.Require().NoError(ApplyTransition(&order, models.StatusConfirmed, true, s.now.Add(2*time.Minute)))
	s.Require().NoError(ApplyTransition(&order, models.StatusDelivered, true, s.now.Add(3*time.Minute)))
	d = ComputeDashboard([]models.Order{order}, 1, 2, s.now)
	s.Equal(int64(1), d.OrdersThisMonth)

	// Terminal: nothing moves a delivered order.
	err = ApplyTransition(&order, models.StatusProcessing, true, s.now.Add(4*time.Minute))
	s.ErrorIs(err, ErrIllegalTransition)
}

func (s *OrderFlowSuite) TestCanceledOrderDropsOutOfCounts() {
	s.Require().NoError(s.carts.Add("session", 1, 1))

	lines, err := s.carts.Get("session")
	s.Require().NoError(err)

	order, err := BuildOrder(lines, s.products, deliveryRequest(), 500)
	s.Require().NoError(err)
	order.CreatedAt = s.now

	s.Require().NoError(ApplyTransition(&order, models.StatusProcessing, true, s.now))
	d := ComputeDashboard([]models.Order{order}, 0, 0, s.now)
	s.Equal(int64(1), d.OrdersThisMonth)

	s.Require().NoError(ApplyTransition(&order, models.StatusCanceled, true, s.now.Add(time.Minute)))
	d = ComputeDashboard([]models.Order{order}, 0, 0, s.now)
	s.Equal(int64(0), d.OrdersThisMonth)
	// Revenue still includes the canceled order's total.
	s.Equal(int64(1500), d.ThisMonthRevenue)
}

func (s *OrderFlowSuite) TestFailedCheckoutLeavesCartIntact() {
	s.Require().NoError(s.carts.Add("session", 1, 1))
	s.Require().NoError(s.carts.Add("session", 99, 1)) // no such product

	lines, err := s.carts.Get("session")
	s.Require().NoError(err)

	_, err = BuildOrder(lines, s.products, deliveryRequest(), 500)
	s.ErrorIs(err, ErrNotFound)

	// The materialization failed, so the cart is untouched.
	lines, err = s.carts.Get("session")
	s.Require().NoError(err)
	s.Len(lines, 2)
}

func TestOrderFlowSuite(t *testing.T) {
	suite.Run(t, new(OrderFlowSuite))
}
