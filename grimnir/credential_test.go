package grimnir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialHeaders(t *testing.T) {
	apiKey := apiKeyCredential{key: "gr_test"}
	assert.Equal(t, map[string]string{"X-API-Key": "gr_test"}, apiKey.headers())

	bearer := bearerCredential{token: "tok"}
	assert.Equal(t, map[string]string{"Authorization": "Bearer tok"}, bearer.headers())

	// Neither variant ever emits the other's header.
	assert.NotContains(t, apiKey.headers(), "Authorization")
	assert.NotContains(t, bearer.headers(), "X-API-Key")
}
