package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// maxLoggedBody caps how much of a request body goes into a debug line.
const maxLoggedBody = 2048

func StructuredLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.New().String()

		c.Locals("requestID", requestID)
		c.Set("X-Request-ID", requestID)

		if logger.Enabled(c.Context(), slog.LevelDebug) {
			logRequestBody(c, logger, requestID)
		}

		err := c.Next()

		status := c.Response().StatusCode()
		latency := time.Since(start)

		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.String("ip", c.IP()),
			slog.String("user_agent", c.Get("User-Agent")),
		}

		if err != nil {
			logAttrs = append(logAttrs, slog.String("error", err.Error()))
			logger.LogAttrs(c.Context(), slog.LevelError, "request error", logAttrs...)
		} else if status >= 500 {
			logger.LogAttrs(c.Context(), slog.LevelError, "server error", logAttrs...)
		} else if status >= 400 {
			logger.LogAttrs(c.Context(), slog.LevelWarn, "client error", logAttrs...)
		} else {
			logger.LogAttrs(c.Context(), slog.LevelInfo, "request completed", logAttrs...)
		}

		return err
	}
}

func logRequestBody(c *fiber.Ctx, logger *slog.Logger, requestID string) {
	if c.Method() != fiber.MethodPost && c.Method() != fiber.MethodPut {
		return
	}
	body := c.Body()
	if len(body) == 0 {
		return
	}

	truncated := len(body) > maxLoggedBody
	if truncated {
		body = body[:maxLoggedBody]
	}

	logger.LogAttrs(c.Context(), slog.LevelDebug, "request body",
		slog.String("request_id", requestID),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("body", string(body)),
		slog.Bool("truncated", truncated),
	)
}

// GetRequestID returns the id assigned by StructuredLogger, or "".
func GetRequestID(c *fiber.Ctx) string {
	requestID, ok := c.Locals("requestID").(string)
	if !ok {
		return ""
	}
	return requestID
}
