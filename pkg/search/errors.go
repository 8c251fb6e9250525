package search

import (
	"errors"
	"fmt"
)

// ErrNoEndpoint is returned when a client is asked to search without a
// configured endpoint URL.
var ErrNoEndpoint = errors.New("no search endpoint configured")

// StatusError reports a non-2xx response from the search endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search endpoint returned status %d", e.Code)
}

// ParseError wraps a failure of the configured Parser. The UI treats it
// the same as a transport failure; the distinction matters only for
// diagnostics.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse search response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
