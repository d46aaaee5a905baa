package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	Timezone    string
	Telegram    TelegramConfig
}

// LoadConfig reads .env (when present) and the process environment. Missing
// Telegram credentials are not an error: the relay runs unconfigured.
func LoadConfig(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("TELEGRAM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_TIMEOUT: %w", err)
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "production"),
		Timezone:    getEnv("TIMEZONE", "UTC"),
		Telegram: TelegramConfig{
			BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
			ChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
			APIURL:   getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
			Sender:   getEnv("TELEGRAM_SENDER", "telegram"),
			Timeout:  timeout,
		},
	}, nil
}

// Location resolves Timezone, falling back to UTC for unknown names.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("unknown TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
