package handlers

import (
	"github.com/dentalshop/database"
	"github.com/dentalshop/shop"
	"github.com/gofiber/fiber/v2"
)

// Dashboard returns the admin summary metrics as JSON.
func Dashboard(c *fiber.Ctx) error {
	dashboard, err := svc.Dashboard(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(dashboard)
}

// DashboardPage renders the server-side admin dashboard.
func DashboardPage(c *fiber.Ctx) error {
	dashboard, err := svc.Dashboard(c.Context())
	if err != nil {
		return err
	}

	return c.Render("pages/dashboard", fiber.Map{
		"Title":                    "Панель управления",
		"Dashboard":                dashboard,
		"ThisMonthRevenue":         shop.FormatPrice(dashboard.ThisMonthRevenue),
		"LastMonthRevenue":         shop.FormatPrice(dashboard.LastMonthRevenue),
		"RevenueDifferencePercent": dashboard.RevenueDifferencePercent,
		"SQLQueries":               c.Locals("SQLQueries"),
		"TotalSQLQueries":          c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// GetSQLLogs returns recent SQL logs as JSON
func GetSQLLogs(c *fiber.Ctx) error {
	return c.JSON(database.SQLLogger.Recent(20))
}

// ClearSQLLogs clears all SQL logs
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.SendStatus(fiber.StatusOK)
}
