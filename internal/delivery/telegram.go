package delivery

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"
)

// DefaultTelegramAPIURL is the public Bot API endpoint.
const DefaultTelegramAPIURL = "https://api.telegram.org"

// TelegramConfig configures a TelegramSender.
type TelegramConfig struct {
	Token   string
	ChatID  string
	APIURL  string
	Timeout time.Duration
	// Client overrides the HTTP client, Timeout is ignored when set.
	Client *http.Client
}

// TelegramSender posts messages with sendMessage in HTML parse mode.
type TelegramSender struct {
	bot    *tele.Bot
	chat   chatRecipient
	token  string
	client *http.Client
}

// chatRecipient lets both numeric ids and @channel usernames be used as chat id.
type chatRecipient string

func (c chatRecipient) Recipient() string { return string(c) }

// NewTelegramSender builds a sender without contacting Telegram; the bot
// identity is never fetched since only sendMessage is used.
func NewTelegramSender(cfg TelegramConfig) (*TelegramSender, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	if strings.TrimSpace(cfg.ChatID) == "" {
		return nil, errors.New("telegram chat id is empty")
	}

	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = DefaultTelegramAPIURL
	}

	bot, err := tele.NewBot(tele.Settings{
		URL:       apiURL,
		Token:     cfg.Token,
		ParseMode: tele.ModeHTML,
		Client:    client,
		Offline:   true,
	})
	if err != nil {
		return nil, err
	}

	return &TelegramSender{
		bot:    bot,
		chat:   chatRecipient(strings.TrimSpace(cfg.ChatID)),
		token:  cfg.Token,
		client: client,
	}, nil
}

// Send makes a single sendMessage call. The returned error is either a
// *TransportError or a *RejectedError.
func (s *TelegramSender) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return &TransportError{Err: err}
	}

	_, err := s.bot.Send(s.chat, text, &tele.SendOptions{ParseMode: tele.ModeHTML})
	if err == nil {
		return nil
	}
	return s.classify(err)
}

// Close releases idle connections. It does not call the Bot API close method,
// which would log the bot out.
func (s *TelegramSender) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

func (s *TelegramSender) classify(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &TransportError{Err: &url.Error{
			Op:  urlErr.Op,
			URL: s.redact(urlErr.URL),
			Err: urlErr.Err,
		}}
	}

	var apiErr *tele.Error
	if errors.As(err, &apiErr) {
		return &RejectedError{Code: apiErr.Code, Description: apiErr.Description, Err: err}
	}

	var floodErr tele.FloodError
	if errors.As(err, &floodErr) {
		return &RejectedError{Code: http.StatusTooManyRequests, Description: floodErr.Error(), Err: err}
	}

	// Non-ok answers without a known description and undecodable bodies.
	return &RejectedError{Description: s.redact(err.Error()), Err: err}
}

// redact strips the bot token from anything that may end up in logs.
func (s *TelegramSender) redact(v string) string {
	if s.token == "" {
		return v
	}
	return strings.ReplaceAll(v, s.token, "<redacted>")
}
