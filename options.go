package turbosign

import (
	"net/http"
	"time"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL     string
	apiKey      string
	accessToken string
	orgID       string
	httpClient  *http.Client
	timeout     time.Duration
	senderName  string
	senderEmail string
}

// Option configures the client.
type Option func(*clientConfig)

// WithAPIKey authenticates with a TurboDocx API key, sent as the
// X-API-Key header.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithAccessToken authenticates with an OAuth2 access token, sent as a
// bearer Authorization header. Takes precedence over an API key when both
// are configured; the two are never sent together.
func WithAccessToken(token string) Option {
	return func(c *clientConfig) {
		c.accessToken = token
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithOrgID sets the organization ID header on every request.
func WithOrgID(orgID string) Option {
	return func(c *clientConfig) {
		c.orgID = orgID
	}
}

// WithTimeout sets the fixed per-call timeout. Exceeding it surfaces as a
// NetworkError, not an API error. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. When set, WithTimeout is
// ignored in favor of the client's own timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithSender sets the default sender name and email for signing requests.
// A request's own SenderName/SenderEmail take precedence.
func WithSender(name, email string) Option {
	return func(c *clientConfig) {
		c.senderName = name
		c.senderEmail = email
	}
}
