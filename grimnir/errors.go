package grimnir

import (
	"errors"
	"fmt"
	"time"
)

// Common errors
var (
	// ErrMissingBaseURL indicates the client was constructed without a base URL.
	ErrMissingBaseURL = errors.New("grimnir URL is required")
	// ErrConflictingAuth indicates both an API key and a bearer token were configured.
	ErrConflictingAuth = errors.New("api key and bearer token are mutually exclusive")
	// ErrNoSession indicates a session call on a client without a bearer token.
	ErrNoSession = errors.New("no active session: client holds no bearer token")
	// ErrAPIKeySession indicates a session call on a static API key client.
	ErrAPIKeySession = errors.New("client is configured with a static API key, not a session")
	// ErrUnauthorized indicates authentication failure.
	ErrUnauthorized = errors.New("unauthorized: invalid credentials")
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("resource not found")
)

// APIError represents a Grimnir API error response (status >= 400).
// Body carries the response text unparsed, even when it looks like
// JSON, so broken or HTML error pages keep their original diagnostics.
type APIError struct {
	StatusCode int
	Body       string
	Endpoint   string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("grimnir API error %d on %s: %s", e.StatusCode, e.Endpoint, e.Body)
}

// IsNotFound checks if the error indicates a not found response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.IsUnauthorized()
	case ErrNotFound:
		return e.IsNotFound()
	}
	return false
}

// AuthError indicates that login or refresh was rejected by the backend.
type AuthError struct {
	Operation string // "login" or "refresh"
	Err       error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a success response declared as JSON failed to parse.
type DecodeError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response from %s: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TimeoutError indicates the configured timeout elapsed before a response.
type TimeoutError struct {
	Endpoint string
	Timeout  time.Duration
	Err      error
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out after %v", e.Endpoint, e.Timeout)
}

// Unwrap returns the underlying error.
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// ConnectionError indicates a transport-level failure (DNS, TCP reset,
// TLS handshake) before a response was received.
type ConnectionError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}
