package grimnir

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// apiPathPrefix is the versioned path prefix of the Grimnir REST API.
const apiPathPrefix = "/api/v1"

// Client wraps the Grimnir Radio API. It owns one reusable connection
// pool and holds one logical session: Login and Refresh replace the
// credential and must be serialized externally if the client is shared
// across goroutines.
type Client struct {
	baseURL    string
	apiURL     string
	cred       credential
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Grimnir client. Authentication is configured
// with WithAPIKey or WithBearerToken (never both); a client built with
// neither can call public endpoints or start a session via Login.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	options := clientOptions{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&options)
	}

	if options.apiKey != "" && options.token != "" {
		return nil, ErrConflictingAuth
	}

	var cred credential
	switch {
	case options.apiKey != "":
		cred = apiKeyCredential{key: options.apiKey}
	case options.token != "":
		cred = bearerCredential{token: options.token}
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = options.timeout

	return &Client{
		baseURL:    baseURL,
		apiURL:     baseURL + apiPathPrefix,
		cred:       cred,
		timeout:    options.timeout,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Close releases the client's pooled connections. Callers should
// defer it on every exit path once the client is no longer needed.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// BaseURL returns the configured base URL without the API path prefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the active bearer token, or "" when the client holds
// an API key or no credential.
func (c *Client) Token() string {
	if bearer, ok := c.cred.(bearerCredential); ok {
		return bearer.token
	}
	return ""
}

// TokenExpiresAt returns the expiry of the active bearer token. The
// zero time means no bearer session or no expiry sent by the backend.
func (c *Client) TokenExpiresAt() time.Time {
	if bearer, ok := c.cred.(bearerCredential); ok {
		return bearer.expiresAt
	}
	return time.Time{}
}

// FileAttachment is binary content uploaded as a multipart body.
type FileAttachment struct {
	Filename string
	Content  []byte
	MIMEType string
}

// rawResponse is an executed call before contract interpretation.
type rawResponse struct {
	statusCode int
	body       string
	endpoint   string
}

func (r *rawResponse) apiError() *APIError {
	return &APIError{StatusCode: r.statusCode, Body: r.body, Endpoint: r.endpoint}
}

// decode interprets the response under the JSON contract. An empty
// success body decodes to an empty map.
func (r *rawResponse) decode() (map[string]any, error) {
	if r.statusCode >= 400 {
		return nil, r.apiError()
	}
	if len(r.body) == 0 {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(r.body), &out); err != nil {
		return nil, &DecodeError{Endpoint: r.endpoint, Err: err}
	}
	return out, nil
}

// text interprets the response under the raw-text contract, returning
// the body verbatim on success.
func (r *rawResponse) text() (string, error) {
	if r.statusCode >= 400 {
		return "", r.apiError()
	}
	return r.body, nil
}

// call dispatches a request with the client's active credential.
func (c *Client) call(ctx context.Context, method, endpoint string, params url.Values, body any, file *FileAttachment) (*rawResponse, error) {
	return c.callAs(ctx, c.cred, method, endpoint, params, body, file)
}

// callAs builds and executes one request. The raw response is returned
// for any status code; classification happens in decode/text. Exactly
// one of body and file may be set.
func (c *Client) callAs(ctx context.Context, cred credential, method, endpoint string, params url.Values, body any, file *FileAttachment) (*rawResponse, error) {
	target := c.apiURL + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reader io.Reader
	contentType := "application/json"
	switch {
	case file != nil:
		buf, multipartType, err := encodeMultipart(*file)
		if err != nil {
			return nil, err
		}
		reader = buf
		contentType = multipartType
	case body != nil:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	if cred != nil {
		for key, value := range cred.headers() {
			req.Header.Set(key, value)
		}
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", target).
		Msg("Dispatching Grimnir API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.classifyTransport(endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.classifyTransport(endpoint, err)
	}

	raw := &rawResponse{statusCode: resp.StatusCode, body: string(data), endpoint: endpoint}

	c.logger.Debug().
		Int("status", raw.statusCode).
		Str("endpoint", endpoint).
		Msg("Grimnir API response")

	return raw, nil
}

// classifyTransport maps a transport failure to TimeoutError or
// ConnectionError. Neither is retried; retry is the caller's business.
func (c *Client) classifyTransport(endpoint string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &TimeoutError{Endpoint: endpoint, Timeout: c.timeout, Err: err}
	}
	return &ConnectionError{Endpoint: endpoint, Err: err}
}

// getJSON dispatches a GET under the JSON contract.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values) (map[string]any, error) {
	raw, err := c.call(ctx, http.MethodGet, endpoint, params, nil, nil)
	if err != nil {
		return nil, err
	}
	return raw.decode()
}

// postJSON dispatches a POST with a JSON body under the JSON contract.
func (c *Client) postJSON(ctx context.Context, endpoint string, body any) (map[string]any, error) {
	raw, err := c.call(ctx, http.MethodPost, endpoint, nil, body, nil)
	if err != nil {
		return nil, err
	}
	return raw.decode()
}

// upload dispatches a multipart POST carrying a single file field.
func (c *Client) upload(ctx context.Context, endpoint string, params url.Values, file FileAttachment) (map[string]any, error) {
	raw, err := c.call(ctx, http.MethodPost, endpoint, params, nil, &file)
	if err != nil {
		return nil, err
	}
	return raw.decode()
}

// encodeMultipart encodes the attachment as a multipart body with a
// single field named "file". The returned content type carries the
// boundary and replaces the JSON content-type header.
func encodeMultipart(file FileAttachment) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, file.Filename))
	if file.MIMEType != "" {
		header.Set("Content-Type", file.MIMEType)
	}

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode multipart body: %w", err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return nil, "", fmt.Errorf("failed to encode multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to encode multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

// listField unwraps a list envelope. A missing key is an empty
// sequence, never an error.
func listField(resp map[string]any, key string) []map[string]any {
	items, ok := resp[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if entry, ok := item.(map[string]any); ok {
			out = append(out, entry)
		}
	}
	return out
}
