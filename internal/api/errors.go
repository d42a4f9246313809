package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError reports a malformed or missing argument. It is returned
// synchronously, before any network I/O happens.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// APIError represents a non-200 response from the API. The raw body and
// headers are carried through untouched; the client does not interpret
// API-level error payloads.
type APIError struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, body)
}

// DecodeError reports a 200 response whose body failed to parse as JSON.
// It is distinct from APIError so callers can tell "server said OK but
// sent garbage" from "server said error".
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected API response format (JSON decode failed): %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if the error is a validation error.
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsAPIError checks if the error is a non-200 API response.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsDecodeError checks if the error is a JSON decode failure.
func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

// IsNotFound checks if the error is a 404 API response.
func IsNotFound(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}

// AsAPIError extracts the *APIError from an error chain, if any.
func AsAPIError(err error) (*APIError, bool) {
	var e *APIError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
