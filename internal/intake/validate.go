// Package intake holds the upload acceptance rules shared by the upload
// endpoint and the batch client.
package intake

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// MaxFileSize is 10 MiB. A file of exactly this size is accepted.
const MaxFileSize int64 = 10 * 1024 * 1024

var AcceptedExtensions = []string{".pdf", ".docx", ".txt"}

var (
	ErrUnsupportedType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file size must not exceed 10MB")
)

// ValidateFile checks the extension first, then the size.
func ValidateFile(name string, size int64) error {
	if !IsAccepted(name) {
		return fmt.Errorf("%s: %w, please upload %s files only", name, ErrUnsupportedType, strings.Join(AcceptedExtensions, ", "))
	}

	if size > MaxFileSize {
		return fmt.Errorf("%s: %w", name, ErrFileTooLarge)
	}

	return nil
}

func IsAccepted(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}

// Extension returns the lower-cased extension without the leading dot.
func Extension(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}
