package album

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned by the transport when the API answers with a
// non-success status after retries are exhausted.
type StatusError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Body       string `json:"body"        yaml:"body"`
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("unexpected status %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrBaseURLRequired    = errors.New("base URL is required")
	ErrInvalidBaseURL     = errors.New("base URL must be an absolute http or https URL")
	ErrInvalidID          = errors.New("value is not a valid number")
	ErrNoResults          = errors.New("no matching records")
	ErrResourceNotReached = errors.New("album resource did not return a success status")
)

// IsUnavailable checks if the error came from a non-success API status.
func IsUnavailable(err error) bool {
	if errors.Is(err, ErrResourceNotReached) {
		return true
	}

	statusErr := &StatusError{}

	return errors.As(err, &statusErr)
}

// IsNotFound checks if the error reports a successful call with no matching records.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoResults)
}

// StatusCode extracts the HTTP status from an error chain, or 0.
func StatusCode(err error) int {
	statusErr := &StatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}

	return 0
}
