package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds resource names and component identifiers.
const maxNameLength = 256

// ValidateResourceName validates the name of a stored glyph resource.
// It ensures the name is a simple basename that cannot escape the store.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - No hidden files (leading dot)
//   - Maximum length of 256 characters
func ValidateResourceName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "resource name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "resource name too long (max %d bytes)", maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "resource name contains invalid control characters")
		}
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidName, "resource name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "resource name cannot contain path traversal sequences (..)")
	}
	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidName, "resource name cannot be a hidden file")
	}
	return nil
}

// ValidateComponentID validates an opaque component identifier before it
// is handed to a resolver. Identifiers are either radical glyphs or numbers,
// so anything that looks like a path is rejected.
func ValidateComponentID(id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeInvalidRequest, "component identifier cannot be empty")
	}
	if len(id) > maxNameLength {
		return New(ErrCodeInvalidRequest, "component identifier too long (max %d bytes)", maxNameLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidRequest, "component identifier contains invalid control characters")
		}
	}
	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidRequest, "component identifier contains invalid characters: %q", pattern)
		}
	}
	return nil
}
