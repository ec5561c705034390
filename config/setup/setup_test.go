package setup

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskhub/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogLevel(tt.input))
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("Production writes JSON", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(&config.Config{Env: "production", LogLevel: "info"}, buf)

		logger.Debug("hidden")
		logger.Info("visible", "key", "value")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "visible", line["msg"])
		assert.Equal(t, "value", line["key"])
		assert.NotContains(t, line, "source")
	})

	t.Run("Development writes text with source", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(&config.Config{Env: "development", LogLevel: "debug"}, buf)

		logger.Debug("shown")

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "msg=shown")
		assert.Contains(t, buf.String(), "source=")
	})
}

func newTestConfig() *config.Config {
	return &config.Config{
		Port:         7000,
		Env:          "test",
		LogLevel:     "info",
		CORSOrigins:  "https://example.com",
		RateLimitMax: 2,
	}
}

func TestApplyMiddleware_RateLimit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := NewServer(newTestConfig(), InitApp(logger))

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestApplyMiddleware_CORS(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := NewServer(newTestConfig(), InitApp(logger))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://example.com")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestApplyMiddleware_RecoversPanics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := newTestConfig()
	cfg.RateLimitMax = 0

	app := NewFiberApp(cfg, logger)
	ApplyMiddleware(app, cfg, logger)
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, resp.Header.Get("X-Request-ID"), body["request_id"])
}

func TestCustomErrorHandler_FiberError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := NewFiberApp(newTestConfig(), logger)
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "short and stout", body["error"])
	assert.Equal(t, "", body["request_id"])
}

func TestShutdown(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := NewServer(newTestConfig(), InitApp(logger))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() {
		served <- app.Listener(ln)
	}()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, Shutdown(ctx, app, logger))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("listener did not return after shutdown")
	}
}
