// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package dylib

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestFilenameForLibrary(t *testing.T) {
	name := FilenameForLibrary("example")
	switch runtime.GOOS {
	case "windows":
		if name != "example.dll" {
			t.Errorf("FilenameForLibrary = %q, want example.dll", name)
		}
	case "darwin":
		if name != "libexample.dylib" {
			t.Errorf("FilenameForLibrary = %q, want libexample.dylib", name)
		}
	default:
		if name != "libexample.so" {
			t.Errorf("FilenameForLibrary = %q, want libexample.so", name)
		}
	}
}

func TestPathForLibrary(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, FilenameForLibrary("fake"))
	if err := os.WriteFile(fake, []byte("not a real library"), 0o600); err != nil {
		t.Fatalf("Failed to create fake library: %v", err)
	}

	got := PathForLibrary(dir, "fake")
	if !strings.HasSuffix(got, FilenameForLibrary("fake")) {
		t.Errorf("PathForLibrary = %q, want path ending in %q", got, FilenameForLibrary("fake"))
	}

	if got := PathForLibrary(dir, "absent"); got != "" {
		t.Errorf("PathForLibrary for missing library = %q, want empty", got)
	}
}

func TestFindLibrary(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, FilenameForLibrary("findme"))
	if err := os.WriteFile(fake, []byte("not a real library"), 0o600); err != nil {
		t.Fatalf("Failed to create fake library: %v", err)
	}

	// Two entries so the search actually walks the list; the first one
	// does not contain the library.
	sep := string(rune(loaderPathSeparator))
	t.Setenv(loaderPathVar, t.TempDir()+sep+dir)

	got := FindLibrary("findme")
	if !strings.HasSuffix(got, FilenameForLibrary("findme")) {
		t.Errorf("FindLibrary = %q, want path ending in %q", got, FilenameForLibrary("findme"))
	}

	if got := FindLibrary("nowhere"); got != "" {
		t.Errorf("FindLibrary for missing library = %q, want empty", got)
	}
}

func TestOpenMissingLibrary(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), FilenameForLibrary("missing"))); err == nil {
		t.Error("Open of a nonexistent library should fail")
	}
}

func TestClosedLibrary(t *testing.T) {
	l := &Library{path: "stale"}
	if _, err := l.Symbol("anything"); err != ErrClosed {
		t.Errorf("Symbol on closed library = %v, want ErrClosed", err)
	}
	if l.HasSymbol("anything") {
		t.Error("HasSymbol on closed library should be false")
	}
	if err := l.Close(); err != ErrClosed {
		t.Errorf("Close on closed library = %v, want ErrClosed", err)
	}
}
