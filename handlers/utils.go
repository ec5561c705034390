package handlers

import (
	"log/slog"
	"net/url"
	"strconv"

	"taskhub/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const (
	msgMalformedBody = "JSON mal-formado ou formato de dados inválido."
	msgInvalidID     = "ID inválido"
)

func success(c *fiber.Ctx, data any) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func noContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Error answers carry the bare message as text/plain.

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).SendString(message)
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).SendString(message)
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).SendString(message)
}

func serverErrorWithDetails(c *fiber.Ctx, logger *slog.Logger, message string, err error) error {
	logger.Error("server error",
		"request_id", middleware.GetRequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).SendString(message)
}

// parseBody decodes the request body as JSON regardless of Content-Type.
func parseBody(c *fiber.Ctx, out any) error {
	return c.App().Config().JSONDecoder(c.Body(), out)
}

// param returns the percent-decoded route parameter. The result is copied
// because fiber reuses the underlying buffer once the handler returns.
// Decoding keeps '+' literal, so emails like a+b@x.com survive.
func param(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	value, err := url.PathUnescape(raw)
	if err != nil {
		value = raw
	}
	return utils.CopyString(value)
}

func paramID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
