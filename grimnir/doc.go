// Package grimnir provides a client for the Grimnir Radio API.
//
// Grimnir Radio is a radio station automation platform. This package
// implements a Go client for its versioned JSON REST API, covering
// station management, media upload, scheduling, live DJ sessions,
// analytics, syndication and underwriting.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: request dispatch with a fixed per-client timeout
//   - Credential: one of two mutually exclusive auth variants
//     (static API key or session bearer token)
//   - Errors: structured error types for classification
//   - Endpoint methods: one method per REST operation
//
// # Usage
//
// Create a client with an API key (generate one from your profile
// page in the web dashboard):
//
//	logger := zerolog.New(os.Stderr)
//	client, err := grimnir.NewClient(
//		"https://radio.example.com",
//		logger,
//		grimnir.WithAPIKey("gr_your-api-key"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	stations, err := client.GetStations(ctx)
//
// Or start a session with email and password:
//
//	client, err := grimnir.NewClient("https://radio.example.com", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if _, err := client.Login(ctx, "dj@example.com", "secret"); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Every call either returns decoded data or one of the structured
// error types:
//
//   - APIError: any response with status >= 400, carrying the status
//     code, the unparsed response body and the endpoint path
//   - AuthError: login or refresh rejected by the backend
//   - DecodeError: a success body that should be JSON failed to parse
//   - TimeoutError: the configured timeout elapsed
//   - ConnectionError: any lower-level transport failure
//
// Errors propagate unchanged; the client never retries and never
// substitutes defaults. APIError includes helper methods:
//
//	var apiErr *grimnir.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// handle missing resource
//	}
//
// # Concurrency
//
// A client owns one reusable connection pool. Independent clients are
// fully isolated and may be used concurrently. A single client holds
// one logical session: calling Login or Refresh concurrently with
// other calls on the same instance is a data race and must be
// serialized externally by the caller.
package grimnir
