package grimnir

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	var loginHeaders http.Header
	var loginBody map[string]any
	var stationsAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			loginHeaders = r.Header.Clone()
			json.NewDecoder(r.Body).Decode(&loginBody)
			json.NewEncoder(w).Encode(map[string]any{
				"token":      "tok-after-login",
				"expires_at": "2026-09-01T12:00:00Z",
				"user":       map[string]any{"id": "u1", "email": "dj@example.com"},
			})
		case "/api/v1/stations":
			stationsAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"stations":[]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	result, err := client.Login(context.Background(), "dj@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "tok-after-login", result.Token)
	assert.Equal(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), result.ExpiresAt.UTC())
	assert.Equal(t, "u1", result.User["id"])

	// The login call itself carries no credential.
	assert.Empty(t, loginHeaders.Get("Authorization"))
	assert.Empty(t, loginHeaders.Get("X-API-Key"))
	assert.Equal(t, map[string]any{"email": "dj@example.com", "password": "secret"}, loginBody)

	// Subsequent calls carry the new bearer token.
	_, err = client.GetStations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-after-login", stationsAuth)
	assert.Equal(t, "tok-after-login", client.Token())
}

func TestLoginWithoutExpiry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"token": "tok"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	result, err := client.Login(context.Background(), "dj@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, result.ExpiresAt.IsZero())
	assert.True(t, client.TokenExpiresAt().IsZero())
}

func TestLoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`invalid credentials`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "dj@example.com", "wrong")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "login", authErr.Operation)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid credentials", apiErr.Body)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// The failed login leaves the client without a session.
	assert.Empty(t, client.Token())
}

func TestLoginOnAPIKeyClient(t *testing.T) {
	client, err := NewClient("http://localhost:8080", zerolog.Nop(), WithAPIKey("gr_test"))
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "dj@example.com", "secret")
	assert.ErrorIs(t, err, ErrAPIKeySession)
}

func TestRefresh(t *testing.T) {
	var refreshAuth, refreshPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		refreshPath = r.URL.Path
		refreshAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"token": "tok-new"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop(), WithBearerToken("tok-old"))
	require.NoError(t, err)

	result, err := client.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/auth/refresh", refreshPath)
	assert.Equal(t, "Bearer tok-old", refreshAuth)
	assert.Equal(t, "tok-new", result.Token)
	assert.Equal(t, "tok-new", client.Token())
}

func TestRefreshRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`token expired`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop(), WithBearerToken("tok-old"))
	require.NoError(t, err)

	_, err = client.Refresh(context.Background())
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "refresh", authErr.Operation)

	// The stored token is untouched on failure.
	assert.Equal(t, "tok-old", client.Token())
}

func TestRefreshWithoutSession(t *testing.T) {
	t.Run("api key client", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080", zerolog.Nop(), WithAPIKey("gr_test"))
		require.NoError(t, err)

		_, err = client.Refresh(context.Background())
		assert.ErrorIs(t, err, ErrAPIKeySession)
	})

	t.Run("unauthenticated client", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080", zerolog.Nop())
		require.NoError(t, err)

		_, err = client.Refresh(context.Background())
		assert.ErrorIs(t, err, ErrNoSession)
	})
}

func TestAuthResultBadExpiry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"token": "tok", "expires_at": "next tuesday"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "dj@example.com", "secret")
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
