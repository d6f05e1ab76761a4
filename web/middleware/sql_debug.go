package middleware

import (
	"github.com/dentalshop/database"
	"github.com/gofiber/fiber/v2"
)

// SQLDebugMiddleware exposes the SQL statements executed while handling
// the request through c.Locals, for the debug endpoint and the dashboard
// template.
func SQLDebugMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		before := database.SQLLogger.Count()

		err := c.Next()

		after := database.SQLLogger.Count()
		executed := after - before
		if executed < 0 {
			executed = 0
		}

		c.Locals("SQLQueries", database.SQLLogger.Recent(executed))
		c.Locals("TotalSQLQueries", executed)
		return err
	}
}
