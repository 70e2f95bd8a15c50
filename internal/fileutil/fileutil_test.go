package fileutil

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	path, cleanup, err := WriteTempFile("<html>hello</html>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}
	defer cleanup()

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path = %q, want .html suffix", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<html>hello</html>" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteTempFile_CleanupRemovesFile(t *testing.T) {
	path, cleanup, err := WriteTempFile("x", "html")
	if err != nil {
		t.Fatal(err)
	}
	cleanup()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists after cleanup: %v", err)
	}
}

func TestWriteTempFile_BadExtension(t *testing.T) {
	tests := []struct {
		name string
		ext  string
	}{
		{"empty", ""},
		{"slash", "ht/ml"},
		{"backslash", "ht\\ml"},
		{"null byte", "ht\x00ml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := WriteTempFile("x", tt.ext)
			if !errors.Is(err, ErrBadExtension) {
				t.Errorf("error = %v, want ErrBadExtension", err)
			}
		})
	}
}
