package grimnir

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// AuthResult is the outcome of a successful login or refresh.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time // zero when the backend sent no expiry
	User      map[string]any
}

// Login starts a session with email and password. On success the
// client's credential is replaced wholesale with the new bearer token;
// every subsequent call carries it. Fails with ErrAPIKeySession on a
// client configured with a static API key.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if _, ok := c.cred.(apiKeyCredential); ok {
		return nil, ErrAPIKeySession
	}

	// The login call itself is unauthenticated.
	raw, err := c.callAs(ctx, nil, http.MethodPost, "/auth/login", nil, map[string]any{
		"email":    email,
		"password": password,
	}, nil)
	if err != nil {
		return nil, err
	}

	result, err := c.authResult(raw)
	if err != nil {
		return nil, wrapAuthFailure("login", err)
	}

	c.cred = bearerCredential{token: result.Token, expiresAt: result.ExpiresAt}
	c.logger.Debug().Str("email", email).Msg("Session established")
	return result, nil
}

// Refresh exchanges the current bearer token for a new one and
// replaces the stored credential. It never inspects or reacts to the
// token's expiry; scheduling refreshes is the caller's business. Fails
// with ErrNoSession unless the client holds a bearer token.
func (c *Client) Refresh(ctx context.Context) (*AuthResult, error) {
	if _, ok := c.cred.(apiKeyCredential); ok {
		return nil, ErrAPIKeySession
	}
	if _, ok := c.cred.(bearerCredential); !ok {
		return nil, ErrNoSession
	}

	raw, err := c.call(ctx, http.MethodPost, "/auth/refresh", nil, nil, nil)
	if err != nil {
		return nil, err
	}

	result, err := c.authResult(raw)
	if err != nil {
		return nil, wrapAuthFailure("refresh", err)
	}

	c.cred = bearerCredential{token: result.Token, expiresAt: result.ExpiresAt}
	c.logger.Debug().Msg("Session token refreshed")
	return result, nil
}

// authResult decodes an auth endpoint response into an AuthResult.
func (c *Client) authResult(raw *rawResponse) (*AuthResult, error) {
	resp, err := raw.decode()
	if err != nil {
		return nil, err
	}

	result := &AuthResult{}
	token, _ := resp["token"].(string)
	result.Token = token

	if expires, ok := resp["expires_at"].(string); ok && expires != "" {
		parsed, err := time.Parse(time.RFC3339, expires)
		if err != nil {
			return nil, &DecodeError{Endpoint: raw.endpoint, Err: err}
		}
		result.ExpiresAt = parsed
	}
	if user, ok := resp["user"].(map[string]any); ok {
		result.User = user
	}
	return result, nil
}

// wrapAuthFailure turns a backend rejection into an AuthError while
// letting decode failures pass through unchanged.
func wrapAuthFailure(operation string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &AuthError{Operation: operation, Err: apiErr}
	}
	return err
}
