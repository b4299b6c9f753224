// Package source loads the file a search runs against.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 is returned when the file is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
	// ErrTooLarge is returned when the file exceeds the configured byte limit.
	ErrTooLarge = errors.New("file exceeds max_file_bytes")
	// ErrIsDirectory is returned when the path names a directory.
	ErrIsDirectory = errors.New("is a directory")
)

// ReadText reads the whole file at path into memory. maxBytes <= 0 disables
// the size limit.
func ReadText(path string, maxBytes int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	if maxBytes > 0 && info.Size() > int64(maxBytes) {
		return "", fmt.Errorf("%s (%d bytes > %d): %w", path, info.Size(), maxBytes, ErrTooLarge)
	}

	var r io.Reader = f
	if maxBytes > 0 {
		// the file may grow between Stat and Read
		r = io.LimitReader(f, int64(maxBytes)+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return "", fmt.Errorf("%s: %w", path, ErrTooLarge)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	return string(data), nil
}
