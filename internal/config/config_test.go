package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SAP-F-2025/submission-relay/internal/delivery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "ENVIRONMENT", "TIMEZONE",
	"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "TELEGRAM_API_URL", "TELEGRAM_SENDER", "TELEGRAM_TIMEOUT",
}

// clearEnv blanks every variable LoadConfig reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIURL)
	assert.Equal(t, "telegram", cfg.Telegram.Sender)
	assert.Equal(t, 30*time.Second, cfg.Telegram.Timeout)
	assert.False(t, cfg.Telegram.Configured())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nENVIRONMENT=development\nTELEGRAM_BOT_TOKEN=abc:def\nTELEGRAM_CHAT_ID=-100123\nTELEGRAM_TIMEOUT=5s\nTIMEZONE=Asia/Tashkent\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "abc:def", cfg.Telegram.BotToken)
	assert.Equal(t, "-100123", cfg.Telegram.ChatID)
	assert.Equal(t, 5*time.Second, cfg.Telegram.Timeout)
	assert.True(t, cfg.Telegram.Configured())
}

func TestLoadConfig_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TIMEOUT", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{Timezone: "UTC"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg.Timezone = "Not/AZone"
	loc, err = cfg.Location()
	assert.Error(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestTelegramConfig_CreateSender(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		c := &TelegramConfig{BotToken: "abc:def"}
		sender, err := c.CreateSender(discardLogger())
		require.NoError(t, err)
		assert.Nil(t, sender)
	})

	t.Run("telegram", func(t *testing.T) {
		c := &TelegramConfig{BotToken: "abc:def", ChatID: "1", Sender: "telegram", APIURL: "http://127.0.0.1:1"}
		sender, err := c.CreateSender(discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &delivery.TelegramSender{}, sender)
	})

	t.Run("log", func(t *testing.T) {
		c := &TelegramConfig{BotToken: "abc:def", ChatID: "1", Sender: "log"}
		sender, err := c.CreateSender(discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &delivery.LogSender{}, sender)
	})

	t.Run("unknown falls back to telegram", func(t *testing.T) {
		c := &TelegramConfig{BotToken: "abc:def", ChatID: "1", Sender: "pigeon"}
		sender, err := c.CreateSender(discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &delivery.TelegramSender{}, sender)
	})
}
