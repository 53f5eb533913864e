package grimnir

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every request when no timeout option is given.
const DefaultTimeout = 30 * time.Second

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	apiKey     string
	token      string
	timeout    time.Duration
	httpClient *http.Client
}

// WithAPIKey authenticates every call with a static API key.
// Mutually exclusive with WithBearerToken.
func WithAPIKey(key string) Option {
	return func(o *clientOptions) {
		o.apiKey = key
	}
}

// WithBearerToken resumes an existing session with a bearer token.
// Mutually exclusive with WithAPIKey.
func WithBearerToken(token string) Option {
	return func(o *clientOptions) {
		o.token = token
	}
}

// WithTimeout sets the timeout bounding every request. There is no
// per-call override.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client. Its timeout is overridden
// by the client's configured timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
