package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestTempDir(t *testing.T) {
	dir := TempDir(t)
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat(%q) error: %v", dir, err)
	}
	if !info.IsDir() {
		t.Errorf("%q is not a directory", dir)
	}
}

func TestCaptureOutput(t *testing.T) {
	out := CaptureOutput(t, func() error {
		fmt.Println("captured line")
		return nil
	})
	if !strings.Contains(out, "captured line") {
		t.Errorf("CaptureOutput = %q, want it to contain %q", out, "captured line")
	}
}
