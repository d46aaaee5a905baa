package services

import (
	"errors"

	apperrors "github.com/SAP-F-2025/submission-relay/internal/errors"
)

// ===== RELAY ERRORS =====

var (
	ErrRelayNotConfigured = errors.New("telegram relay not configured")
	ErrDeliveryRejected   = errors.New("telegram rejected the message")
	ErrDeliveryTransport  = errors.New("telegram could not be reached")
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// IsNotConfigured checks if error means delivery was skipped for lack of credentials
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrRelayNotConfigured)
}
