package grimnir

import "time"

// credential is one of the two mutually exclusive authentication
// variants. A value is immutable once built; Login and Refresh replace
// the client's credential wholesale rather than mutating fields.
type credential interface {
	// headers returns the auth header contribution for a request.
	headers() map[string]string
}

// apiKeyCredential authenticates with a static API key.
type apiKeyCredential struct {
	key string
}

func (c apiKeyCredential) headers() map[string]string {
	return map[string]string{"X-API-Key": c.key}
}

// bearerCredential authenticates with a session bearer token obtained
// from the auth endpoints. expiresAt is zero when the backend sent no
// expiry; nothing in the client inspects it before issuing a call.
type bearerCredential struct {
	token     string
	expiresAt time.Time
}

func (c bearerCredential) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.token}
}
