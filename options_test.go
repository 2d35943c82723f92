package turbosign

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithAPIKey(t *testing.T) {
	cfg := &clientConfig{}
	WithAPIKey("key-123")(cfg)
	assert.Equal(t, "key-123", cfg.apiKey)
}

func TestWithAccessToken(t *testing.T) {
	cfg := &clientConfig{}
	WithAccessToken("tok-456")(cfg)
	assert.Equal(t, "tok-456", cfg.accessToken)
}

func TestWithBaseURL(t *testing.T) {
	cfg := &clientConfig{}
	WithBaseURL("https://custom.example.com")(cfg)
	assert.Equal(t, "https://custom.example.com", cfg.baseURL)
}

func TestWithOrgID(t *testing.T) {
	cfg := &clientConfig{}
	WithOrgID("org-789")(cfg)
	assert.Equal(t, "org-789", cfg.orgID)
}

func TestWithTimeout(t *testing.T) {
	cfg := &clientConfig{}
	WithTimeout(90 * time.Second)(cfg)
	assert.Equal(t, 90*time.Second, cfg.timeout)
}

func TestWithHTTPClient(t *testing.T) {
	cfg := &clientConfig{}
	custom := &http.Client{Timeout: 99 * time.Second}
	WithHTTPClient(custom)(cfg)
	assert.Same(t, custom, cfg.httpClient)
}

func TestWithSender(t *testing.T) {
	cfg := &clientConfig{}
	WithSender("Acme Sales", "sales@acme.com")(cfg)
	assert.Equal(t, "Acme Sales", cfg.senderName)
	assert.Equal(t, "sales@acme.com", cfg.senderEmail)
}
