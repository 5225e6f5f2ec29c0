package errors

import (
	"slices"
	"strings"
)

// ValidateDimensions checks that a grid of rows x columns can be built.
// Both sides must be at least 1. If limit is positive, neither side may
// exceed it.
func ValidateDimensions(rows, columns, limit int) error {
	if rows < 1 {
		return New(ErrCodeInvalidDimensions, "rows must be at least 1, got %d", rows)
	}
	if columns < 1 {
		return New(ErrCodeInvalidDimensions, "columns must be at least 1, got %d", columns)
	}
	if limit > 0 && (rows > limit || columns > limit) {
		return New(ErrCodeInvalidDimensions, "maze is %dx%d, maximum side is %d", rows, columns, limit)
	}
	return nil
}

// ValidateChoice checks that value is one of allowed, reporting code on failure.
// The comparison is case-sensitive.
func ValidateChoice(code Code, what, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return New(code, "invalid %s: %q (must be one of: %s)", what, value, strings.Join(allowed, ", "))
}
