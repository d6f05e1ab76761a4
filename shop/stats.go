package shop

import (
	"context"
	"time"

	"github.com/dentalshop/models"
	"github.com/shopspring/decimal"
)

// RevenueNotApplicable is reported when the month-over-month revenue
// percentage cannot be computed, i.e. one endpoint is zero.
const RevenueNotApplicable = "н/д"

// Dashboard holds the admin summary metrics for one point in time.
type Dashboard struct {
	ThisMonthRevenue         int64  `json:"this_month_revenue"`
	LastMonthRevenue         int64  `json:"last_month_revenue"`
	RevenueDifferencePercent string `json:"revenue_difference_percent"`
	OrdersThisMonth          int64  `json:"orders_this_month"`
	OrdersToday              int64  `json:"orders_today"`
	OrdersYesterday          int64  `json:"orders_yesterday"`
	Users                    int64  `json:"users"`
	Products                 int64  `json:"products"`
}

// RevenueDifferencePercent compares this month's revenue with last
// month's. Equal revenues give "0". If either endpoint is zero the ratio
// is undefined and the not-applicable sentinel is returned instead of
// dividing by zero. Positive deltas carry a "+" prefix.
func RevenueDifferencePercent(thisMonth, lastMonth int64) string {
	diff := thisMonth - lastMonth
	if diff == 0 {
		return "0"
	}
	if lastMonth == 0 || thisMonth == 0 {
		return RevenueNotApplicable
	}

	val := decimal.NewFromInt(diff).
		Div(decimal.NewFromInt(lastMonth).Div(decimal.NewFromInt(100)))
	s := val.String()
	if val.IsPositive() {
		return "+" + s
	}
	return s
}

// ComputeDashboard derives the dashboard metrics from the given orders at
// the given instant, using calendar boundaries in now's location. Revenue
// sums every order of the month regardless of status; order counts skip
// PENDING and CANCELED, since those never became real orders.
//
// The function is pure: callers supply the orders (anything created since
// the start of last month suffices) together with the user and product
// totals.
func ComputeDashboard(orders []models.Order, userCount, productCount int64, now time.Time) Dashboard {
	startOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfLastMonth := startOfThisMonth.AddDate(0, -1, 0)
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfYesterday := startOfToday.AddDate(0, 0, -1)

	d := Dashboard{Users: userCount, Products: productCount}

	for _, order := range orders {
		created := order.CreatedAt

		if !created.Before(startOfThisMonth) {
			d.ThisMonthRevenue += order.Total
		} else if !created.Before(startOfLastMonth) {
			d.LastMonthRevenue += order.Total
		}

		if !order.Status.Counted() {
			continue
		}
		if !created.Before(startOfThisMonth) {
			d.OrdersThisMonth++
		}
		if !created.Before(startOfToday) {
			d.OrdersToday++
		} else if !created.Before(startOfYesterday) {
			d.OrdersYesterday++
		}
	}

	d.RevenueDifferencePercent = RevenueDifferencePercent(d.ThisMonthRevenue, d.LastMonthRevenue)
	return d
}

// Dashboard loads the order window plus user and product totals and
// computes the admin dashboard.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	now := time.Now()
	startOfLastMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)

	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("created_at >= ?", startOfLastMonth).
		Find(&orders).Error
	if err != nil {
		return Dashboard{}, err
	}

	var userCount, productCount int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&userCount).Error; err != nil {
		return Dashboard{}, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return Dashboard{}, err
	}

	return ComputeDashboard(orders, userCount, productCount, now), nil
}
