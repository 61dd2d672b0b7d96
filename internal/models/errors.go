package models

import "errors"

// Application-wide standard errors
var (
	// Credential errors
	ErrMissingCredential = errors.New("api key is required")
	ErrUpstreamAuth      = errors.New("completion api rejected the api key")
	ErrUpstreamQuota     = errors.New("completion api quota exceeded or billing issue")

	// Generation errors
	ErrUpstreamGeneration = errors.New("error generating template")
	ErrEmptyCompletion    = errors.New("completion api returned an empty response")

	// General request errors
	ErrInvalidInput = errors.New("invalid input data")
	ErrFetchFailed  = errors.New("failed to fetch page")
)

// Error codes returned to clients.
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeMissingAPIKey    = "MISSING_API_KEY"
	ErrCodeInvalidAPIKey    = "INVALID_API_KEY"
	ErrCodeQuotaExceeded    = "QUOTA_EXCEEDED"
	ErrCodeGenerationFailed = "GENERATION_FAILED"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// UpstreamError wraps a failure of the completion API together with its
// classification (ErrUpstreamAuth, ErrUpstreamQuota or ErrUpstreamGeneration).
type UpstreamError struct {
	Kind  error
	Cause error
}

func (e *UpstreamError) Error() string {
	return e.Kind.Error() + ": " + e.Cause.Error()
}

// Unwrap allows errors.Is to match both the classification and the cause.
func (e *UpstreamError) Unwrap() []error {
	return []error{e.Kind, e.Cause}
}
