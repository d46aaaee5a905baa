package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/submission-relay/internal/delivery"
	"github.com/SAP-F-2025/submission-relay/internal/models"
	"github.com/SAP-F-2025/submission-relay/internal/validator"
)

// DeliveryOutcome is the closed set of results of relaying one submission
type DeliveryOutcome string

const (
	OutcomeDelivered           DeliveryOutcome = "delivered"
	OutcomeSkippedUnconfigured DeliveryOutcome = "skipped_unconfigured"
	OutcomeDeliveryRejected    DeliveryOutcome = "delivery_rejected"
	OutcomeTransportFailed     DeliveryOutcome = "transport_failed"
)

// Advisory messages returned to the caller for each outcome
const (
	MessageDelivered    = "Answers sent to Telegram successfully"
	MessageUnconfigured = "Test submitted successfully (Telegram not configured)"
	MessageRejected     = "Test submitted (Telegram delivery failed)"
	MessageServerError  = "Test submitted (server error)"
)

// DeliveryResult carries the outcome and, for anything but a delivery, the cause
type DeliveryResult struct {
	Outcome DeliveryOutcome `json:"outcome"`
	Err     error           `json:"-"`
}

// Message returns the advisory text for the outcome
func (r DeliveryResult) Message() string {
	switch r.Outcome {
	case OutcomeDelivered:
		return MessageDelivered
	case OutcomeSkippedUnconfigured:
		return MessageUnconfigured
	case OutcomeDeliveryRejected:
		return MessageRejected
	default:
		return MessageServerError
	}
}

// Success is always true: the submission itself is accepted whatever happens
// to the notification.
func (r DeliveryResult) Success() bool {
	return true
}

// Delivered reports whether the message reached the chat
func (r DeliveryResult) Delivered() bool {
	return r.Outcome == OutcomeDelivered
}

// RelayService formats submissions and forwards them to the chat
type RelayService interface {
	Relay(ctx context.Context, record *models.SubmissionRecord) DeliveryResult
	Configured() bool
}

type relayService struct {
	sender    delivery.Sender
	formatter *Formatter
	logger    *ServiceLogger
	validator *validator.Validator
}

// NewRelayService creates the relay. A nil sender means the relay is
// unconfigured and every submission is acknowledged without delivery.
func NewRelayService(sender delivery.Sender, formatter *Formatter, logger *slog.Logger, validator *validator.Validator) RelayService {
	return &relayService{
		sender:    sender,
		formatter: formatter,
		logger:    NewServiceLogger(logger, "relay"),
		validator: validator,
	}
}

func (s *relayService) Configured() bool {
	return s.sender != nil
}

// Relay makes at most one delivery attempt and never returns an error; the
// cause of a failed delivery is kept in the result.
func (s *relayService) Relay(ctx context.Context, record *models.SubmissionRecord) DeliveryResult {
	start := time.Now()
	if record == nil {
		record = &models.SubmissionRecord{}
	}

	summary := SubmissionSummary{
		Student: record.StudentName.String(),
		Test:    record.TestName.String(),
	}

	if errs := s.validator.ValidateSubmission(record); len(errs) > 0 {
		s.logger.LogValidationError(ctx, summary, errs)
	}

	result := s.deliver(ctx, record, &summary)
	s.logger.LogDelivery(ctx, summary, result, time.Since(start))
	return result
}

func (s *relayService) deliver(ctx context.Context, record *models.SubmissionRecord, summary *SubmissionSummary) DeliveryResult {
	if s.sender == nil {
		return DeliveryResult{Outcome: OutcomeSkippedUnconfigured, Err: ErrRelayNotConfigured}
	}

	text := s.formatter.Format(record)
	summary.MessageLength = len(text)

	err := s.sender.Send(ctx, text)
	switch {
	case err == nil:
		return DeliveryResult{Outcome: OutcomeDelivered}
	case delivery.IsRejected(err):
		return DeliveryResult{Outcome: OutcomeDeliveryRejected, Err: fmt.Errorf("%w: %w", ErrDeliveryRejected, err)}
	default:
		return DeliveryResult{Outcome: OutcomeTransportFailed, Err: fmt.Errorf("%w: %w", ErrDeliveryTransport, err)}
	}
}
