package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/SAP-F-2025/submission-relay/internal/delivery"
)

// TelegramConfig holds the Bot API credentials and sender selection
type TelegramConfig struct {
	BotToken string        `env:"TELEGRAM_BOT_TOKEN"`
	ChatID   string        `env:"TELEGRAM_CHAT_ID"`
	APIURL   string        `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org"`
	Sender   string        `env:"TELEGRAM_SENDER" envDefault:"telegram"` // telegram or log
	Timeout  time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"30s"`
}

// Configured reports whether both the token and the chat id are set
func (c *TelegramConfig) Configured() bool {
	return strings.TrimSpace(c.BotToken) != "" && strings.TrimSpace(c.ChatID) != ""
}

// CreateSender creates the sender selected by configuration. It returns a nil
// Sender when credentials are missing; the relay then acknowledges
// submissions without delivering them.
func (c *TelegramConfig) CreateSender(logger *slog.Logger) (delivery.Sender, error) {
	if !c.Configured() {
		logger.Warn("Telegram environment variables not configured")
		return nil, nil
	}

	switch c.Sender {
	case "telegram":
		logger.Info("Creating Telegram sender",
			"api_url", c.APIURL,
			"chat_id", c.ChatID,
			"timeout", c.Timeout.String())

		sender, err := delivery.NewTelegramSender(delivery.TelegramConfig{
			Token:   c.BotToken,
			ChatID:  c.ChatID,
			APIURL:  c.APIURL,
			Timeout: c.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return sender, nil
	case "log":
		logger.Info("Using log sender, messages will not reach Telegram")
		return delivery.NewLogSender(logger), nil
	default:
		logger.Warn("Unknown sender type, falling back to telegram", "sender", c.Sender)
		c.Sender = "telegram"
		return c.CreateSender(logger)
	}
}
