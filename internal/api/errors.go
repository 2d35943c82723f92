package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the TurboDocx API.
// Every HTTP failure maps into this one type; callers branch on StatusCode
// and Code rather than on distinct error classes, which keeps the mapping
// total when the server introduces new error codes.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error %d [%s]: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// NetworkError represents a failure before any response body existed:
// connection refused, DNS failure, timeout, or context cancellation.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// parseAPIError maps a non-2xx status and raw body into an *APIError.
// It never fails: a body that is not JSON, or carries no message, falls
// back to "HTTP <status>: <reason phrase>". The code field is only taken
// from the body, never invented.
func parseAPIError(statusCode int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Code    string `json:"code"`
	}

	apiErr := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		if apiErr.Message == "" {
			apiErr.Message = payload.Error
		}
		apiErr.Code = payload.Code
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode))
	}
	return apiErr
}
