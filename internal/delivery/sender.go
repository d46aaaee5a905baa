// Package delivery forwards rendered notifications to a chat destination.
package delivery

import (
	"context"
	"errors"
	"fmt"
)

// Sender delivers one pre-rendered HTML message to a fixed destination.
// Implementations make at most one attempt per call.
type Sender interface {
	Send(ctx context.Context, text string) error
	Close() error
}

// TransportError means the request never produced a response from the remote
// endpoint (DNS, connect, TLS, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("delivery transport failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectedError means the remote endpoint answered but did not accept the message.
type RejectedError struct {
	Code        int
	Description string
	Err         error
}

func (e *RejectedError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("delivery rejected (%d): %s", e.Code, e.Description)
	}
	return fmt.Sprintf("delivery rejected: %s", e.Description)
}

func (e *RejectedError) Unwrap() error { return e.Err }

// IsTransport reports whether err is a transport failure
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsRejected reports whether err is a rejection by the remote endpoint
func IsRejected(err error) bool {
	var re *RejectedError
	return errors.As(err, &re)
}
