package delivery

import (
	"context"
	"log/slog"
	"sync"
)

// LogSender writes messages to the log instead of a chat. Used for local
// runs where no bot is available.
type LogSender struct {
	mu       sync.Mutex
	messages []string
	logger   *slog.Logger
}

// NewLogSender creates a new log-only sender
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{
		messages: make([]string, 0),
		logger:   logger,
	}
}

// Send logs the message and keeps a copy
func (s *LogSender) Send(ctx context.Context, text string) error {
	s.mu.Lock()
	s.messages = append(s.messages, text)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Log sender: message not forwarded",
		"length", len(text),
		"text", text)
	return nil
}

// Close is a no-op for the log sender
func (s *LogSender) Close() error {
	return nil
}

// Messages returns the messages seen so far
func (s *LogSender) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}
