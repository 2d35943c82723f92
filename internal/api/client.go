package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

// DefaultBaseURL is the production TurboDocx API endpoint.
const DefaultBaseURL = "https://api.turbodocx.com"

// DefaultTimeout is the fixed per-call timeout. There is no per-operation
// override; callers needing a shorter bound use context deadlines.
const DefaultTimeout = 30 * time.Second

// Config holds the transport configuration.
type Config struct {
	BaseURL     string
	APIKey      string
	AccessToken string
	OrgID       string
	HTTPClient  *http.Client
	Timeout     time.Duration
}

// Client is the HTTP transport for the TurboDocx API. It holds no per-call
// state and is safe for concurrent use.
type Client struct {
	baseURL     string
	apiKey      string
	accessToken string
	orgID       string
	httpClient  *http.Client
}

// NewClient creates a transport from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.APIKey == "" && cfg.AccessToken == "" {
		return nil, errors.New("an API key or access token is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		accessToken: cfg.AccessToken,
		orgID:       cfg.OrgID,
		httpClient:  httpClient,
	}, nil
}

// setAuthHeaders attaches exactly one auth scheme. A bearer access token
// takes precedence over an API key; both are never sent together.
func (c *Client) setAuthHeaders(req *http.Request) {
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	} else {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	if c.orgID != "" {
		req.Header.Set("x-rapiddocx-org-id", c.orgID)
	}
}

// Do performs a JSON request. A nil body sends no payload; a non-nil result
// receives the envelope-unwrapped response body.
func (c *Client) Do(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return &NetworkError{Err: err, URL: c.baseURL + path}
	}

	c.setAuthHeaders(req)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, URL: c.baseURL + path}
	}

	return c.handleResponse(resp, result)
}

// DoRaw performs a GET and returns the response body as untouched bytes.
// No Accept header forces JSON; the bytes are never decoded.
func (c *Client) DoRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: c.baseURL + path}
	}

	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: c.baseURL + path}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: c.baseURL + path}
	}
	if resp.StatusCode >= 300 {
		return nil, parseAPIError(resp.StatusCode, body)
	}
	return body, nil
}

// Upload performs a multipart POST: one binary part named "file" with the
// given content type, plus one string part per fields entry.
func (c *Client) Upload(ctx context.Context, path string, file []byte, fileName, contentType string, fields map[string]string, result interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(file); err != nil {
		return fmt.Errorf("write file part: %w", err)
	}

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("write field %s: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return &NetworkError{Err: err, URL: c.baseURL + path}
	}

	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, URL: c.baseURL + path}
	}

	return c.handleResponse(resp, result)
}

// handleResponse maps non-2xx statuses through parseAPIError and decodes
// successful bodies into result, unwrapping the {"data": ...} envelope.
func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, body)
	}

	if result == nil {
		return nil
	}
	return decodeEnvelope(body, result)
}

// decodeEnvelope unwraps exactly one {"data": ...} level before decoding.
// Bodies whose only key is "data" are unwrapped; anything else decodes
// directly, tolerating endpoints that respond flat.
func decodeEnvelope(body []byte, result interface{}) error {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err == nil {
		if data, ok := wrapper["data"]; ok && len(wrapper) == 1 {
			if err := json.Unmarshal(data, result); err != nil {
				return fmt.Errorf("decode response envelope: %w", err)
			}
			return nil
		}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
