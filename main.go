package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskhub/config"
	"taskhub/config/setup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setup.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	application := setup.InitApp(logger)
	app := setup.NewServer(cfg, application)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	go func() {
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := setup.Shutdown(ctx, app, logger); err != nil {
		os.Exit(1)
	}
}
