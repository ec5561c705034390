package config

import (
	"fmt"
	"os"
	"strconv"

	"taskhub/validator"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int    `label:"PORT" validate:"gte=1,lte=65535"`
	Env            string `label:"ENV" validate:"oneof=development production test"`
	LogLevel       string `label:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	CORSOrigins    string `label:"CORS_ORIGINS" validate:"required"`
	RateLimitMax   int    `label:"RATE_LIMIT_MAX" validate:"gte=0"`
	AdminEndpoints bool   `label:"ADMIN_ENDPOINTS"`
}

// Load reads the configuration from the environment, after merging in a
// .env file when one exists. Variables already set win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := GetEnvInt("PORT", 7000)
	if err != nil {
		return nil, err
	}
	rateLimit, err := GetEnvInt("RATE_LIMIT_MAX", 200)
	if err != nil {
		return nil, err
	}
	admin, err := GetEnvBool("ADMIN_ENDPOINTS", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:           port,
		Env:            GetEnv("ENV", "development"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		CORSOrigins:    GetEnv("CORS_ORIGINS", "*"),
		RateLimitMax:   rateLimit,
		AdminEndpoints: admin,
	}

	if err := validator.New().Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}

func GetEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, value)
	}
	return b, nil
}
