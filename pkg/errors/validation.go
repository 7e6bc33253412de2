package errors

import (
	"strings"
	"unicode"
)

// ValidateLayoutName validates a saved-layout name for safety and correctness.
// Layout names become store keys (and, for the file backend, file names), so
// the rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateLayoutName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidLayoutName, "layout name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidLayoutName, "layout name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLayoutName, "layout name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidLayoutName, "layout name contains invalid characters: %q", pattern)
		}
	}

	// Hidden names would collide with the store's own bookkeeping files.
	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidLayoutName, "layout name cannot start with a dot")
	}

	return nil
}

// ValidateWidgetID validates a widget identifier supplied by a registry.
// IDs are opaque to the engine but must be non-empty and printable because
// they key the occupancy set and appear in persisted snapshots.
func ValidateWidgetID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "widget id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "widget id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "widget id contains invalid control characters")
		}
	}
	return nil
}
