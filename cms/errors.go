package cms

import (
	apierrors "github.com/olgasafonova/notion-cms-mcp-server/internal/errors"
)

// ClientError is returned by every Client operation. Status is the HTTP
// status code, or 0 for transport, decode and validation failures.
type ClientError = apierrors.ClientError

// ValidationError describes rejected input; it is always wrapped in a ClientError.
type ValidationError = apierrors.ValidationError

// IsNotFound reports whether err is a ClientError carrying HTTP 404.
func IsNotFound(err error) bool {
	return apierrors.IsNotFound(err)
}

// IsValidation reports whether err was caused by invalid input.
func IsValidation(err error) bool {
	return apierrors.IsValidation(err)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	return apierrors.StatusOf(err)
}
