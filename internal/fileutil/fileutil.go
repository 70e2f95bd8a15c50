// Package fileutil provides temp-file helpers for the rendering pipeline.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrBadExtension indicates an unsafe temp-file extension.
var ErrBadExtension = errors.New("invalid temp file extension")

// WriteTempFile creates a temporary file with the given content and
// extension. Returns the file path and a cleanup function that removes it.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if extension == "" || strings.ContainsAny(extension, "/\\\x00") {
		return "", nil, fmt.Errorf("%w: %q", ErrBadExtension, extension)
	}

	tmp, err := os.CreateTemp("", "docforge-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmp.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}

	return path, cleanup, nil
}
