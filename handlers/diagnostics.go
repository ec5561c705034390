package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func Hello(c *fiber.Ctx) error {
	return c.SendString("Olá, Fiber!")
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Status reports liveness along with the server clock
func Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Echo answers with the JSON object it received
func Echo(c *fiber.Ctx) error {
	var payload map[string]any
	if err := parseBody(c, &payload); err != nil {
		return badRequest(c, msgMalformedBody)
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return c.JSON(payload)
}

// Greeting greets the name given in the path
func Greeting(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"mensagem": "Olá, " + param(c, "nome") + "!"})
}
