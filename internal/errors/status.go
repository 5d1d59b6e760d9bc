package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// StatusError represents a non-2xx response from a remote service.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string // truncated response body, if any
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Service, e.StatusCode, body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Service, e.StatusCode)
}

// NewStatusError creates a new StatusError
func NewStatusError(service string, statusCode int, body string) *StatusError {
	return &StatusError{
		Service:    service,
		StatusCode: statusCode,
		Body:       body,
	}
}

// IsStatusError checks if error is a StatusError
func IsStatusError(err error) bool {
	var statusErr *StatusError
	return stdErrors.As(err, &statusErr)
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not a StatusError.
func StatusCode(err error) int {
	var statusErr *StatusError
	if stdErrors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}
