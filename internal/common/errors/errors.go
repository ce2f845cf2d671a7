// Package errors provides standardized error handling for the gateway fallback policy.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInputValidationFailed ErrorCode = "INPUT_VALIDATION_FAILED"

	ErrCodeUpstreamTimeout ErrorCode = "UPSTREAM_TIMEOUT"
	ErrCodeUpstreamError   ErrorCode = "UPSTREAM_ERROR"
	ErrCodeNoDataForQuery  ErrorCode = "NO_DATA_FOR_QUERY"

	ErrCodeGeolocationFailed ErrorCode = "GEOLOCATION_FAILED"
	ErrCodeScrapeParseFailed ErrorCode = "SCRAPE_PARSE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Maskable  bool                   `json:"maskable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying error so errors.Is still matches the
// per-gateway sentinels a classified error was built from.
func (e *StandardError) Unwrap() error {
	return e.cause
}

// Wrap attaches the underlying error and returns the receiver.
func (e *StandardError) Wrap(err error) *StandardError {
	e.cause = err
	return e
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInputValidationError creates the only error class surfaced to callers as a
// true HTTP failure. Everything else is absorbed by the fallback policy.
func NewInputValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputValidationFailed,
		Message:   "Request validation failed",
		Details:   details,
		Maskable:  false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamTimeoutError creates a maskable timeout error for a named upstream.
func NewUpstreamTimeoutError(service string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamTimeout,
		Message:   fmt.Sprintf("Upstream '%s' timed out", service),
		Maskable:  true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamError creates a maskable error for a non-2xx or malformed upstream response.
func NewUpstreamError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamError,
		Message:   fmt.Sprintf("Upstream '%s' error", service),
		Details:   err.Error(),
		Maskable:  true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoDataError creates a maskable error for an upstream that succeeded but
// returned an empty result set.
func NewNoDataError(service, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNoDataForQuery,
		Message:   fmt.Sprintf("No data returned by '%s'", service),
		Details:   details,
		Maskable:  true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGeolocationError creates a maskable error for the IP-geolocation chain.
func NewGeolocationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeGeolocationFailed,
		Message:   "All geolocation providers failed",
		Details:   details,
		Maskable:  true,
		Timestamp: time.Now().UTC(),
	}
}

// NewScrapeParseError creates a maskable error for broken market-page markup.
func NewScrapeParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeScrapeParseFailed,
		Message:   "Failed to parse market price table",
		Details:   err.Error(),
		Maskable:  true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// IsMaskable reports whether the error should be absorbed and replaced with
// substitute data rather than surfaced to the caller.
func IsMaskable(err error) bool {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Maskable
	}
	// Unknown errors from upstream plumbing default to maskable; only explicit
	// validation errors bubble out as HTTP failures.
	return true
}

// CodeOf extracts the ErrorCode, or UPSTREAM_ERROR for unclassified errors.
func CodeOf(err error) ErrorCode {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeUpstreamError
}
