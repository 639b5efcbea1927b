package errors

import (
	"strings"
	"unicode"
)

// MaxInputLength bounds a single render request accepted over HTTP. The poet
// itself renders input of any length.
const MaxInputLength = 64 * 1024

// ValidateCorpusPath validates a corpus file path supplied on the command
// line, in a config file or over HTTP.
//
// Validation rules:
//   - Path cannot be empty or blank
//   - Maximum length of 4096 bytes
//   - No null bytes or control characters
func ValidateCorpusPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "corpus path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "corpus path too long (max %d bytes)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "corpus path contains invalid characters")
		}
	}

	return nil
}

// ValidateInput validates a render input received over HTTP. Empty input is
// valid and renders to the empty string.
func ValidateInput(input string) error {
	if len(input) > MaxInputLength {
		return New(ErrCodeInvalidInput, "input too long (max %d bytes)", MaxInputLength)
	}
	return nil
}
