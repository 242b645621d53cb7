package errors

import (
	"strings"
	"unicode"
)

// maxIdentifierLength bounds element identifiers in authoring documents.
const maxIdentifierLength = 256

// ValidateIdentifier validates an element identifier from an authoring document.
// Identifiers end up in DOT output and log lines, so the rules are conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - No whitespace
//   - Maximum length of 256 characters
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "identifier cannot be empty")
	}

	if len(id) > maxIdentifierLength {
		return New(ErrCodeInvalidInput, "identifier too long (max %d characters)", maxIdentifierLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "identifier %q contains control characters", id)
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "identifier %q contains whitespace", id)
		}
	}

	return nil
}

// ValidatePath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsFunc(path, unicode.IsControl) {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}

	return nil
}
