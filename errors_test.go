package turbosign

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrMissingCredentials", ErrMissingCredentials},
		{"ErrNoFileSource", ErrNoFileSource},
		{"ErrNoRecipients", ErrNoRecipients},
		{"ErrRecipientNotFound", ErrRecipientNotFound},
		{"ErrMixedPositioning", ErrMixedPositioning},
		{"ErrInvalidFieldType", ErrInvalidFieldType},
		{"ErrInvalidField", ErrInvalidField},
		{"ErrMissingTemplateID", ErrMissingTemplateID},
		{"ErrInvalidVariable", ErrInvalidVariable},
		{"ErrUnauthorized", ErrUnauthorized},
		{"ErrDocumentNotFound", ErrDocumentNotFound},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			assert.NotNil(t, s.err)
			assert.NotEmpty(t, s.err.Error())
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "with code",
			err:      &APIError{StatusCode: 404, Code: "DOCUMENT_NOT_FOUND", Message: "Document not found"},
			expected: "API error 404 [DOCUMENT_NOT_FOUND]: Document not found",
		},
		{
			name:     "without code",
			err:      &APIError{StatusCode: 500, Message: "HTTP 500: Internal Server Error"},
			expected: "API error 500: HTTP 500: Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		status int
		target error
		match  bool
	}{
		{401, ErrUnauthorized, true},
		{404, ErrDocumentNotFound, true},
		{429, ErrRateLimited, true},
		{404, ErrUnauthorized, false},
		{500, ErrDocumentNotFound, false},
	}

	for _, tt := range tests {
		err := &APIError{StatusCode: tt.status}
		assert.Equal(t, tt.match, errors.Is(err, tt.target), "status %d vs %v", tt.status, tt.target)
	}
}

func TestBuildError(t *testing.T) {
	err := buildErr(ErrRecipientNotFound, "no recipient with email %q", "ghost@example.com")
	assert.ErrorIs(t, err, ErrRecipientNotFound)
	assert.Equal(t, `recipient not found: no recipient with email "ghost@example.com"`, err.Error())
	assert.True(t, IsBuildError(err))
	assert.False(t, IsAPIError(err))

	bare := &BuildError{Reason: ErrNoRecipients}
	assert.Equal(t, ErrNoRecipients.Error(), bare.Error())
}

func TestNetworkError_Unwrap(t *testing.T) {
	err := &NetworkError{Err: context.DeadlineExceeded, URL: "https://api.turbodocx.com/x"}
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, IsNetworkError(err))
	assert.Contains(t, err.Error(), "network error")
}

func TestMarkerInterface(t *testing.T) {
	for _, err := range []TurboSignError{
		&APIError{StatusCode: 400},
		&NetworkError{Err: context.Canceled},
		&BuildError{Reason: ErrNoFileSource},
	} {
		assert.Implements(t, (*TurboSignError)(nil), err)
	}
}
