package phishnet

import (
	"fmt"
)

// Error represents a semantic error reported by the Phish.net API.
//
// Semantic errors arrive inside a well-formed response whose envelope
// error field is set: the server understood the request and rejected
// it. It implements error and provides retry classification.
type Error struct {
	Message string // Error message from Phish.net
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("phishnet: api error: %s", e.Message)
}

// Temporary returns false: a semantic rejection will not succeed on
// retry, so the transport layer never reattempts it.
//
// Network errors, unexpected HTTP statuses, and rate limiting are
// retried by the transport layer but are not represented by this type.
func (e *Error) Temporary() bool {
	return false
}

// Predefined errors for common cases.
var (
	// ErrNoAPIKey is returned when client configuration is missing the
	// API key.
	ErrNoAPIKey = fmt.Errorf("phishnet: API key required")
)
