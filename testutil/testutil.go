// Package testutil provides shared testing helpers: temporary directories
// routed through the fspath layer and stdout capture for command tests.
package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/robokit/roboutil/fspath"
)

// TempDir creates a temporary directory for testing with automatic cleanup.
// It goes through fspath.CreateTempDirectory, so every use also exercises
// the library's own temp-directory path.
func TempDir(t *testing.T) string {
	t.Helper()

	dir, err := fspath.CreateTempDirectory("roboutil-test", fspath.TempDirectoryPath())
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	t.Cleanup(func() {
		if !fspath.RemoveAll(dir) {
			t.Logf("Failed to clean up temp directory %s", dir.String())
		}
	})

	return dir.String()
}

// CaptureOutput captures stdout during function execution. The original
// stdout is always restored, even if fn returns an error.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh
	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}
	return output
}
