package errors

import (
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// MaxMazeBytes bounds maze text accepted from untrusted input.
const MaxMazeBytes = 1 << 20

// ValidateMazeText checks maze text received over the network before it is
// parsed. Structural checks (start, goal, shape) belong to the parser; this
// only rejects input that is empty, oversized or binary.
//
// Validation rules:
//   - Text cannot be blank
//   - Maximum size of MaxMazeBytes
//   - No control characters other than newline, carriage return and tab
func ValidateMazeText(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidMaze, "maze cannot be empty")
	}

	if len(text) > MaxMazeBytes {
		return New(ErrCodeInvalidMaze, "maze too large (max %d bytes)", MaxMazeBytes)
	}

	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidMaze, "maze contains invalid control characters")
		}
	}

	return nil
}

// ValidateChoice checks that name is one of allowed, ignoring case and
// surrounding space. The returned error carries code and lists the choices.
func ValidateChoice(code Code, kind, name string, allowed []string) error {
	norm := strings.ToLower(strings.TrimSpace(name))
	if norm == "" {
		return New(code, "%s cannot be empty", kind)
	}
	if !slices.Contains(allowed, norm) {
		return New(code, "unknown %s %q (must be one of: %s)", kind, name, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateRunID checks that id is a canonical UUID as issued by the server.
func ValidateRunID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "run id cannot be empty")
	}
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != strings.ToLower(id) {
		return New(ErrCodeInvalidInput, "invalid run id: %q", id)
	}
	return nil
}

// ValidateDimensions checks maze generator dimensions.
func ValidateDimensions(cols, rows, limit int) error {
	if cols < 1 || rows < 1 {
		return New(ErrCodeInvalidInput, "dimensions must be positive (got %dx%d)", cols, rows)
	}
	if cols > limit || rows > limit {
		return New(ErrCodeInvalidInput, "dimensions too large (got %dx%d, max %d per side)", cols, rows, limit)
	}
	return nil
}

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}
