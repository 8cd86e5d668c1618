package handlers

import (
	"mistake-tracker/app"

	"github.com/gofiber/fiber/v2"
)

// Health reports whether the database is reachable
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Mistakes.CheckConnection(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return success(c, fiber.Map{"status": "ok"})
	}
}

// GetStats returns the dashboard counters
func GetStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.Mistakes.Stats(c.UserContext())
		if err != nil {
			return serviceError(c, err, "Failed to fetch stats")
		}
		return success(c, fiber.Map{"stats": stats})
	}
}
