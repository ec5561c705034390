package setup

import (
	"taskhub/app"
	"taskhub/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App, adminEndpoints bool) {
	// Diagnostics
	fiberApp.Get("/hello", handlers.Hello)
	fiberApp.Get("/health", handlers.Health)
	fiberApp.Get("/status", handlers.Status)
	fiberApp.Post("/echo", handlers.Echo)
	fiberApp.Get("/saudacao/:nome", handlers.Greeting)

	// Users, keyed by email
	fiberApp.Post("/usuarios", handlers.CreateUser(application))
	fiberApp.Get("/usuarios", handlers.ListUsers(application))
	fiberApp.Get("/usuarios/:email", handlers.GetUser(application))
	fiberApp.Put("/usuarios/:email", handlers.UpdateUser(application))
	fiberApp.Delete("/usuarios/:email", handlers.DeleteUser(application))

	// Tasks, keyed by id
	fiberApp.Post("/tarefas", handlers.CreateTask(application))
	fiberApp.Get("/tarefas", handlers.ListTasks(application))
	fiberApp.Get("/tarefas/:id", handlers.GetTask(application))
	fiberApp.Put("/tarefas/:id", handlers.UpdateTask(application))
	fiberApp.Delete("/tarefas/:id", handlers.DeleteTask(application))

	// Test harnesses only
	if adminEndpoints {
		fiberApp.Post("/admin/reset", handlers.Reset(application))
	}
}
