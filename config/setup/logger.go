package setup

import (
	"io"
	"log/slog"
	"strings"

	"taskhub/config"
)

// NewLogger builds the application logger: JSON in production, text
// elsewhere, with source positions in development.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     ParseLogLevel(cfg.LogLevel),
		AddSource: cfg.Env == "development",
	}

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
