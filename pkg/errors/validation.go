package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxContentLength bounds any single content string accepted from callers.
const maxContentLength = 2000

// ValidateDimension checks that a canvas side is a finite, strictly positive number.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidCanvas, "canvas %s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidCanvas, "canvas %s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateContent checks a content string for length and control characters.
// Empty strings are valid: missing content simply omits the element.
func ValidateContent(field, s string) error {
	if len(s) > maxContentLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", field, maxContentLength)
	}
	for _, r := range s {
		if r != '\n' && r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", field)
		}
	}
	return nil
}

// ValidateVibeID checks that a vibe id is a short, printable token.
// Unknown ids are still accepted by the generator; this only guards the
// shape of the string.
func ValidateVibeID(id string) error {
	if len(id) > 64 {
		return New(ErrCodeInvalidVibe, "vibe id too long (max 64 characters)")
	}
	if strings.ContainsFunc(id, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) {
		return New(ErrCodeInvalidVibe, "vibe id must not contain whitespace: %q", id)
	}
	return nil
}
