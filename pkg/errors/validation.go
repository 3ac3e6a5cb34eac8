package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a node or form id arriving from an untrusted
// surface (HTTP request, CLI argument) before it is handed to the engine.
//
// The rules are intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - No path separators (ids end up in file names and URLs)
//   - Maximum length of 128 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "id contains control characters")
		}
	}
	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidInput, "id cannot contain path separators")
	}
	return nil
}

// ValidateFormTitle validates a user-supplied form title. Titles are
// unconstrained in content but bounded in size and free of control
// characters other than spaces.
func ValidateFormTitle(title string) error {
	if len(title) > 256 {
		return New(ErrCodeInvalidInput, "title too long (max 256 characters)")
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains control characters")
		}
	}
	return nil
}
