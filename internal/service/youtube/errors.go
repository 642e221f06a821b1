package youtube

import (
	"errors"
	"fmt"
)

// ErrChannelNotFound signals a well-formed empty result set where a single
// channel was expected.
var ErrChannelNotFound = errors.New("channel not found")

// TransportError represents a network or connection-level failure before any
// HTTP status was obtained.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed (%s): %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError represents a non-2xx upstream response. When the body decoded
// as the API's structured error envelope, Code/Message/Reason carry it;
// otherwise Body holds the raw response text.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type StatusError struct {
	StatusCode int
	Code       int
	Message    string
	Reason     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		reason := e.Reason
		if reason == "" {
			reason = "Unknown reason"
		}
		return fmt.Sprintf("YouTube API error %d: %s - %s", e.Code, e.Message, reason)
	}
	return fmt.Sprintf("YouTube API returned status %d: %s", e.StatusCode, e.Body)
}

// DecodeError represents a response body that does not match the expected
// schema.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
