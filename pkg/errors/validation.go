package errors

import (
	"strings"
	"unicode"
)

// ValidateViewport validates target viewport dimensions.
// Both dimensions must be strictly positive: a zero-sized viewport would
// make the scale computation divide by zero.
func ValidateViewport(width, height float64) error {
	if width <= 0 {
		return New(ErrCodeInvalidViewport, "viewport width must be positive, got %g", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidViewport, "viewport height must be positive, got %g", height)
	}
	return nil
}

// ValidateRotation validates rotation configuration.
// From and to are degrees; orientations is the number of discrete
// rotation steps between them and must be at least 1.
func ValidateRotation(from, to float64, orientations int) error {
	if orientations < 1 {
		return New(ErrCodeInvalidRotation, "orientations must be at least 1, got %d", orientations)
	}
	if orientations > 1 && from == to {
		return New(ErrCodeInvalidRotation, "rotation range is empty but orientations is %d", orientations)
	}
	return nil
}

// ValidateWordText validates a word label for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters (they would corrupt SVG output)
//   - Maximum length of 256 characters
func ValidateWordText(text string) error {
	if text == "" {
		return New(ErrCodeInvalidWordList, "word text cannot be empty")
	}

	if len(text) > 256 {
		return New(ErrCodeInvalidWordList, "word text too long (max 256 characters)")
	}

	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidWordList, "word text contains control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates an output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
