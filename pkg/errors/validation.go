package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// maxPathLength bounds output and input paths accepted from callers.
const maxPathLength = 1024

// ValidatePath checks that path is usable as a file destination or source.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path %q names a directory", path)
	}

	return nil
}

// ValidateExtension checks that path ends in one of the allowed extensions.
// Extensions are compared case-insensitively and given without the dot.
func ValidateExtension(path string, allowed ...string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !slices.Contains(allowed, ext) {
		return New(ErrCodeInvalidFormat, "unsupported file extension %q (want one of: %s)", ext, strings.Join(allowed, ", "))
	}
	return nil
}
