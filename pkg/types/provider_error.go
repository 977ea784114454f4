package types

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorCode categorizes provider errors
type ErrorCode string

const (
	// ErrCodeTransport covers network failures reaching the upstream:
	// connection refused, DNS resolution, resets mid-flight.
	ErrCodeTransport ErrorCode = "transport"

	// ErrCodeTimeout is a transport failure where the upstream did not
	// answer within the configured bound, or the caller's context expired.
	ErrCodeTimeout ErrorCode = "timeout"

	// ErrCodeUpstreamStatus means the upstream answered with a non-success
	// HTTP status.
	ErrCodeUpstreamStatus ErrorCode = "upstream_status"

	// ErrCodeDecode means the upstream body could not be decoded into the
	// provider's expected shape, or the extracted fact text was empty.
	ErrCodeDecode ErrorCode = "decode"
)

// ProviderError represents a standardized, classified failure from a
// fact provider. Exactly one ProviderError surfaces per failed fetch.
type ProviderError struct {
	Code        ErrorCode  // Categorized error code
	Kind        AnimalKind // Which provider generated this error
	Message     string     // Human-readable message
	StatusCode  int        // Upstream HTTP status code (0 if not applicable)
	OriginalErr error      // Wrapped original error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] %s (status=%d, code=%s)", e.Kind, e.Message, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("[%s] %s (code=%s)", e.Kind, e.Message, e.Code)
}

// Unwrap returns the original error for errors.Is/As
func (e *ProviderError) Unwrap() error {
	return e.OriginalErr
}

// IsRetryable returns true if the failure is potentially recoverable by a
// higher layer re-issuing the request. The core itself never retries.
func (e *ProviderError) IsRetryable() bool {
	switch e.Code {
	case ErrCodeTransport, ErrCodeTimeout:
		return true
	case ErrCodeUpstreamStatus:
		return e.StatusCode >= 500
	}
	return false
}

// WithOriginalErr sets the original error field and returns the error for chaining
func (e *ProviderError) WithOriginalErr(err error) *ProviderError {
	e.OriginalErr = err
	return e
}

// WithStatusCode sets the status code field and returns the error for chaining
func (e *ProviderError) WithStatusCode(statusCode int) *ProviderError {
	e.StatusCode = statusCode
	return e
}

// NewTransportError creates a new transport error
func NewTransportError(kind AnimalKind, message string) *ProviderError {
	return &ProviderError{
		Code:    ErrCodeTransport,
		Kind:    kind,
		Message: message,
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(kind AnimalKind, message string) *ProviderError {
	return &ProviderError{
		Code:    ErrCodeTimeout,
		Kind:    kind,
		Message: message,
	}
}

// NewUpstreamStatusError creates a new error for a non-success upstream status
func NewUpstreamStatusError(kind AnimalKind, statusCode int) *ProviderError {
	return &ProviderError{
		Code:       ErrCodeUpstreamStatus,
		Kind:       kind,
		Message:    fmt.Sprintf("upstream responded with status %d", statusCode),
		StatusCode: statusCode,
	}
}

// NewDecodeError creates a new decode error
func NewDecodeError(kind AnimalKind, message string) *ProviderError {
	return &ProviderError{
		Code:    ErrCodeDecode,
		Kind:    kind,
		Message: message,
	}
}

// ClassifyTransportError wraps a round-trip failure as either a timeout or a
// plain transport error. Context expiry and net.Error timeouts both count as
// timeouts so the boundary can answer 504 instead of 502.
func ClassifyTransportError(kind AnimalKind, err error) *ProviderError {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewTimeoutError(kind, "upstream request timed out").WithOriginalErr(err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return NewTimeoutError(kind, "upstream request timed out").WithOriginalErr(err)
	default:
		return NewTransportError(kind, "upstream request failed").WithOriginalErr(err)
	}
}
