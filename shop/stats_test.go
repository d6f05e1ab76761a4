package shop

import (
	"testing"
	"time"

	"github.com/dentalshop/models"
	"github.com/stretchr/testify/assert"
)

func TestRevenueDifferencePercent(t *testing.T) {
	tests := []struct {
		name      string
		thisMonth int64
		lastMonth int64
		want      string
	}{
		{"both zero", 0, 0, "0"},
		{"equal revenues", 5000, 5000, "0"},
		{"last month zero", 1500, 0, RevenueNotApplicable},
		{"this month zero", 0, 1500, RevenueNotApplicable},
		{"fifty percent up", 1500, 1000, "+50"},
		{"fifty percent down", 500, 1000, "-50"},
		{"fractional", 1125, 1000, "+12.5"},
		{"doubled", 2000, 1000, "+100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RevenueDifferencePercent(tt.thisMonth, tt.lastMonth))
		})
	}
}

func orderAt(created time.Time, status models.OrderStatus, total int64) models.Order {
	return models.Order{Status: status, Total: total, CreatedAt: created}
}

func TestComputeDashboardRevenueWindows(t *testing.T) {
	// Mid-month reference point, away from any boundary.
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	orders := []models.Order{
		orderAt(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), models.StatusDelivered, 1000),
		orderAt(time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC), models.StatusPending, 500),
		orderAt(time.Date(2025, time.May, 31, 23, 59, 59, 0, time.UTC), models.StatusDelivered, 2000),
		orderAt(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), models.StatusCanceled, 1000),
		// Outside both windows, must be ignored.
		orderAt(time.Date(2025, time.April, 30, 23, 59, 59, 0, time.UTC), models.StatusDelivered, 9999),
	}

	d := ComputeDashboard(orders, 7, 12, now)

	// Revenue sums every order of the window regardless of status.
	assert.Equal(t, int64(1500), d.ThisMonthRevenue)
	assert.Equal(t, int64(3000), d.LastMonthRevenue)
	assert.Equal(t, "-50", d.RevenueDifferencePercent)
	assert.Equal(t, int64(7), d.Users)
	assert.Equal(t, int64(12), d.Products)
}

func TestComputeDashboardCountsExcludePendingAndCanceled(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)

	var orders []models.Order
	for _, status := range []models.OrderStatus{
		models.StatusPending,
		models.StatusProcessing,
		models.StatusConfirmed,
		models.StatusDelivered,
		models.StatusCanceled,
	} {
		orders = append(orders, orderAt(thisMonth, status, 100))
	}

	d := ComputeDashboard(orders, 0, 0, now)

	// PROCESSING, CONFIRMED, DELIVERED count; PENDING and CANCELED do not.
	assert.Equal(t, int64(3), d.OrdersThisMonth)
}

func TestComputeDashboardTodayAndYesterday(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	orders := []models.Order{
		orderAt(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), models.StatusProcessing, 100),
		orderAt(time.Date(2025, time.June, 15, 11, 59, 0, 0, time.UTC), models.StatusDelivered, 100),
		orderAt(time.Date(2025, time.June, 14, 23, 59, 59, 0, time.UTC), models.StatusConfirmed, 100),
		orderAt(time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC), models.StatusProcessing, 100),
		orderAt(time.Date(2025, time.June, 13, 12, 0, 0, 0, time.UTC), models.StatusProcessing, 100),
		// Today but not countable.
		orderAt(time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC), models.StatusPending, 100),
	}

	d := ComputeDashboard(orders, 0, 0, now)

	assert.Equal(t, int64(2), d.OrdersToday)
	assert.Equal(t, int64(2), d.OrdersYesterday)
}

func TestComputeDashboardYesterdayAcrossMonthBoundary(t *testing.T) {
	// First of the month: yesterday belongs to last month but must still
	// be counted as yesterday.
	now := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	orders := []models.Order{
		orderAt(time.Date(2025, time.May, 31, 20, 0, 0, 0, time.UTC), models.StatusDelivered, 700),
	}

	d := ComputeDashboard(orders, 0, 0, now)

	assert.Equal(t, int64(1), d.OrdersYesterday)
	assert.Equal(t, int64(0), d.OrdersThisMonth)
	assert.Equal(t, int64(700), d.LastMonthRevenue)
}

func TestComputeDashboardEmpty(t *testing.T) {
	d := ComputeDashboard(nil, 0, 0, time.Now())

	assert.Equal(t, "0", d.RevenueDifferencePercent)
	assert.Zero(t, d.ThisMonthRevenue)
	assert.Zero(t, d.OrdersThisMonth)
}
