package errors

import (
	"strings"
	"unicode"
)

// ValidateColumnName validates a user-supplied column name.
// It rejects names that cannot possibly match a table column and would
// otherwise fail late with a confusing message.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateColumnName(name string) error {
	if name == "" {
		return New(ErrCodeUnknownColumn, "column name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeUnknownColumn, "column name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeUnknownColumn, "column name contains invalid control characters")
		}
	}

	return nil
}

// ValidateChartHeight validates a chart height value.
// Height is the number of text rows of vertical resolution; it must be at
// least 1.
func ValidateChartHeight(height int) error {
	if height < 1 {
		return New(ErrCodeInvalidHeight, "chart height must be >= 1, got %d", height)
	}
	return nil
}

// ValidateInputPath validates a data file path for safety.
// It prevents null bytes and unreasonable lengths; existence is checked by
// the caller when the file is opened.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeMissingInput, "input path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidInput, "input path too long (max 500 characters)")
	}

	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidInput, "input path contains null bytes")
	}

	return nil
}
