// Package errors provides shared error types for the Notion CMS client.
package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ClientError is the single error shape returned by every client operation.
type ClientError struct {
	Message string // human-readable message, from the response body when available
	Status  int    // HTTP status code, 0 for transport and decode failures
	Body    any    // parsed error body for diagnostics (empty map if it did not parse)
	Raw     []byte // raw error body as received
	Err     error  // underlying transport or decode failure
}

func (e *ClientError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

// Unwrap exposes the underlying failure to errors.Is and errors.As.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// Wrap converts err into a ClientError. An error that already is (or wraps)
// a ClientError is returned as that ClientError, so errors are never wrapped twice.
func Wrap(err error) *ClientError {
	if err == nil {
		return nil
	}
	var ce *ClientError
	if stderrors.As(err, &ce) {
		return ce
	}
	return &ClientError{Message: err.Error(), Err: err}
}

// Wrapf is like Wrap but prefixes the message of a newly created ClientError.
func Wrapf(err error, format string, args ...any) *ClientError {
	if err == nil {
		return nil
	}
	var ce *ClientError
	if stderrors.As(err, &ce) {
		return ce
	}
	return &ClientError{
		Message: fmt.Sprintf(format, args...) + ": " + err.Error(),
		Err:     err,
	}
}

// FromResponse builds a ClientError for a non-success HTTP response.
// The message comes from a "message" field in a JSON body; otherwise a
// generic message naming the status is used.
func FromResponse(status int, body []byte) *ClientError {
	ce := &ClientError{
		Message: fmt.Sprintf("request failed with status %d", status),
		Status:  status,
		Raw:     body,
	}

	var parsed any
	if err := json.Unmarshal(bytes.TrimSpace(body), &parsed); err != nil {
		ce.Body = map[string]any{}
		return ce
	}
	ce.Body = parsed

	if obj, ok := parsed.(map[string]any); ok {
		if msg, ok := obj["message"].(string); ok && msg != "" {
			ce.Message = msg
		}
	}
	return ce
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ClientError wrapping a ValidationError.
func NewValidationError(field, value, message string) *ClientError {
	return Wrap(&ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// IsNotFound returns true if err is a ClientError with status 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// IsValidation returns true if err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var ce *ClientError
	if stderrors.As(err, &ce) {
		return ce.Status
	}
	return 0
}
