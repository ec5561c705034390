package handlers

import (
	"taskhub/app"
	"taskhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// Reset empties both stores. Registered only when admin endpoints are enabled.
func Reset(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a.Reset()
		a.Logger.Warn("stores reset via admin endpoint", "request_id", middleware.GetRequestID(c))
		return noContent(c)
	}
}
