package setup

import (
	"context"
	"log/slog"

	"taskhub/app"
	"taskhub/config"

	"github.com/gofiber/fiber/v2"
)

// InitApp initializes the application with all dependencies
func InitApp(logger *slog.Logger) *app.App {
	application := app.New(logger)
	logger.Info("user and task stores initialized")
	return application
}

// NewServer wires the application, middleware and routes into a Fiber app
func NewServer(cfg *config.Config, application *app.App) *fiber.App {
	fiberApp := NewFiberApp(cfg, application.Logger)
	ApplyMiddleware(fiberApp, cfg, application.Logger)
	RegisterRoutes(fiberApp, application, cfg.AdminEndpoints)

	if cfg.AdminEndpoints {
		application.Logger.Warn("admin endpoints enabled", "path", "/admin/reset")
	}

	return fiberApp
}

// Shutdown stops the HTTP server, waiting for in-flight requests until ctx ends
func Shutdown(ctx context.Context, fiberApp *fiber.App, logger *slog.Logger) error {
	logger.Info("shutting down server gracefully")

	if err := fiberApp.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}
