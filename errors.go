package turbosign

import (
	"errors"
	"fmt"

	"github.com/turbodocx/turbosign-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingCredentials is returned when neither an API key nor an
	// access token is configured.
	ErrMissingCredentials = errors.New("an API key or access token is required")

	// ErrNoFileSource is returned when a request carries no document source.
	ErrNoFileSource = errors.New("a file source is required")

	// ErrNoRecipients is returned when a request carries no recipients.
	ErrNoRecipients = errors.New("at least one recipient is required")

	// ErrRecipientNotFound is returned when a field references a recipient
	// that is not in the request.
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrMixedPositioning is returned when a field carries both coordinate
	// and anchor positioning data.
	ErrMixedPositioning = errors.New("field mixes coordinate and anchor positioning")

	// ErrInvalidFieldType is returned for a field type outside the
	// supported enumeration.
	ErrInvalidFieldType = errors.New("invalid field type")

	// ErrInvalidField is returned for malformed field geometry, such as a
	// negative coordinate or a page below 1.
	ErrInvalidField = errors.New("invalid field")

	// ErrMissingTemplateID is returned when a generation request has no
	// template ID.
	ErrMissingTemplateID = errors.New("template ID is required")

	// ErrInvalidVariable is returned for a malformed template variable.
	ErrInvalidVariable = errors.New("invalid template variable")

	// ErrUnauthorized is returned when credentials are rejected (HTTP 401).
	ErrUnauthorized = errors.New("invalid or expired credentials")

	// ErrDocumentNotFound is returned when the document does not exist
	// (HTTP 404).
	ErrDocumentNotFound = errors.New("document not found")

	// ErrRateLimited is returned when the API rate limit is exceeded
	// (HTTP 429).
	ErrRateLimited = errors.New("rate limit exceeded")
)

// TurboSignError is implemented by all SDK errors.
type TurboSignError interface {
	error
	TurboSignError() // marker method
}

// APIError represents a non-2xx HTTP response from the TurboDocx API.
// Callers branch on StatusCode and Code; there is one error type for the
// whole taxonomy so new server error codes need no SDK change.
type APIError struct {
	StatusCode int
	Code       string // machine error code from the response body, if any
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error %d [%s]: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// TurboSignError implements the TurboSignError interface.
func (e *APIError) TurboSignError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrDocumentNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a transport-level failure: connection error,
// timeout, or context cancellation. No response body existed to parse.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error, so errors.Is(err, context.Canceled)
// and friends see through the wrapper.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TurboSignError implements the TurboSignError interface.
func (e *NetworkError) TurboSignError() {}

// BuildError represents invalid or ambiguous request input detected before
// any HTTP call. Build errors are never retried.
type BuildError struct {
	Reason error  // matching sentinel
	Detail string // what exactly was wrong
}

func (e *BuildError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s", e.Reason, e.Detail)
	}
	return e.Reason.Error()
}

// Unwrap returns the matching sentinel.
func (e *BuildError) Unwrap() error {
	return e.Reason
}

// TurboSignError implements the TurboSignError interface.
func (e *BuildError) TurboSignError() {}

// IsBuildError reports whether err is a client-side construction error.
func IsBuildError(err error) bool {
	var be *BuildError
	return errors.As(err, &be)
}

// IsAPIError reports whether err is a mapped non-2xx API response.
func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

func buildErr(reason error, format string, args ...interface{}) *BuildError {
	return &BuildError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// wrapError converts internal transport errors to public errors so that
// errors.Is/errors.As work against the exported types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}
