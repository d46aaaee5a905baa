package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/submission-relay/internal/delivery"
)

// ServiceLogger provides structured logging for service layer operations
type ServiceLogger struct {
	logger *slog.Logger
}

func NewServiceLogger(logger *slog.Logger, component string) *ServiceLogger {
	return &ServiceLogger{
		logger: logger.With("service", "submission-relay", "component", component),
	}
}

// LogDelivery logs the outcome of one relay attempt. Successful deliveries
// log at info, skipped ones at warn, failed ones at error.
func (l *ServiceLogger) LogDelivery(ctx context.Context, submission SubmissionSummary, result DeliveryResult, duration time.Duration) {
	level := slog.LevelInfo
	switch result.Outcome {
	case OutcomeSkippedUnconfigured:
		level = slog.LevelWarn
	case OutcomeDeliveryRejected, OutcomeTransportFailed:
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("outcome", string(result.Outcome)),
		slog.String("student", submission.Student),
		slog.String("test", submission.Test),
		slog.Int("message_length", submission.MessageLength),
		slog.Duration("duration", duration),
	}

	if result.Err != nil {
		attrs = append(attrs, slog.String("error", result.Err.Error()))

		var rejected *delivery.RejectedError
		if errors.As(result.Err, &rejected) && rejected.Code != 0 {
			attrs = append(attrs, slog.Int("telegram_error_code", rejected.Code))
		}
	}

	message := fmt.Sprintf("relay %s", result.Outcome)
	l.logger.LogAttrs(ctx, level, message, attrs...)
}

// LogValidationError logs the fields missing from a submission. Validation is
// advisory, so this is a warning and nothing is rejected.
func (l *ServiceLogger) LogValidationError(ctx context.Context, submission SubmissionSummary, validationErrors ValidationErrors) {
	attrs := []slog.Attr{
		slog.String("student", submission.Student),
		slog.Int("error_count", len(validationErrors)),
		slog.Any("fields", validationErrors.Fields()),
	}

	for i, err := range validationErrors {
		if i < 5 { // Limit to first 5 errors to avoid log spam
			attrs = append(attrs, slog.Group(fmt.Sprintf("error_%d", i+1),
				slog.String("field", err.Field),
				slog.String("message", err.Message),
			))
		}
	}

	l.logger.LogAttrs(ctx, slog.LevelWarn, "Submission has missing fields", attrs...)
}

// SubmissionSummary is the subset of a submission that is safe to log
type SubmissionSummary struct {
	Student       string
	Test          string
	MessageLength int
}
