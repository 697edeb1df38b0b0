package cms

import (
	"strings"

	apierrors "github.com/olgasafonova/notion-cms-mcp-server/internal/errors"
)

// ValidateSlug rejects empty or whitespace-only slugs.
func ValidateSlug(slug string) error {
	if strings.TrimSpace(slug) == "" {
		return apierrors.NewValidationError("slug", "", "is required")
	}
	return nil
}

// ParseIndexFormat normalizes a format argument. An empty value means array.
func ParseIndexFormat(format string) (IndexFormat, error) {
	switch IndexFormat(strings.ToLower(strings.TrimSpace(format))) {
	case "", IndexFormatArray:
		return IndexFormatArray, nil
	case IndexFormatObject:
		return IndexFormatObject, nil
	default:
		return "", apierrors.NewValidationError("format", format, "must be \"array\" or \"object\"")
	}
}

// ValidateConfig checks the fields a Client cannot work without.
func ValidateConfig(cfg Config) error {
	if strings.Trim(cfg.Namespace, "/ ") == "" {
		return apierrors.NewValidationError("namespace", "", "is required")
	}
	if strings.Trim(cfg.APIPath, "/ ") == "" {
		return apierrors.NewValidationError("api_path", "", "is required")
	}
	return nil
}
