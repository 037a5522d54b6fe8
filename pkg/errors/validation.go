package errors

import (
	"math"
	"unicode"
)

// maxIDLength bounds item and board identifiers accepted from outside.
const maxIDLength = 128

// ValidateItemID validates an item identifier read from a layout file or a
// request body. It rejects empty, overlong and control-character ids.
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "item id cannot be empty")
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "item id too long (max %d characters)", maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "item id contains invalid control characters")
		}
	}
	return nil
}

// ValidateCoordinate rejects NaN and infinite pointer or item coordinates.
func ValidateCoordinate(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	return nil
}

// ValidateSize rejects non-positive or non-finite extents.
func ValidateSize(name string, v float64) error {
	if err := ValidateCoordinate(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateCount checks a requested item count against [0, limit].
func ValidateCount(n, limit int) error {
	if n < 0 || n > limit {
		return New(ErrCodeInvalidInput, "item count must be between 0 and %d, got %d", limit, n)
	}
	return nil
}
