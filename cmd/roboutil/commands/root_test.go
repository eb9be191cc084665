// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package commands

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robokit/roboutil/fspath"
	"github.com/robokit/roboutil/testutil"
)

// runCommand executes the root command with args and returns captured
// stdout. Persistent flag state is package-level, so it is reset after
// every invocation.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		debugFlag = false
		outputFormat = ""
	})

	var runErr error
	out := testutil.CaptureOutput(t, func() error {
		root := NewRootCommand()
		root.SetArgs(args)
		runErr = root.Execute()
		return runErr
	})
	return out, runErr
}

func TestMkdirsAndRm(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "c")

	if _, err := runCommand(t, "mkdirs", target); err != nil {
		t.Fatalf("mkdirs failed: %v", err)
	}
	if !fspath.IsDirectory(fspath.New(target)) {
		t.Fatalf("%s was not created", target)
	}

	// Not empty above it, so plain rm of the parent must fail.
	parent := filepath.Dir(target)
	if _, err := runCommand(t, "rm", parent); err == nil {
		t.Error("rm of a non-empty directory should fail")
	}

	if _, err := runCommand(t, "rm", "--recursive", parent); err != nil {
		t.Fatalf("rm --recursive failed: %v", err)
	}
	if fspath.Exists(fspath.New(parent)) {
		t.Errorf("%s still exists after rm --recursive", parent)
	}
}

func TestTempdirCreate(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	out, err := runCommand(t, "tempdir", "--create", "--base", "unit")
	if err != nil {
		t.Fatalf("tempdir --create failed: %v", err)
	}
	created := fspath.New(strings.TrimSpace(out))
	if !fspath.IsDirectory(created) {
		t.Fatalf("printed path %q is not a directory", created.String())
	}
	name := created.Filename().String()
	if len(name) != len("unit")+6 || !strings.HasPrefix(name, "unit") {
		t.Errorf("created name = %q, want unit + 6-char suffix", name)
	}
	fspath.RemoveAll(created)
}

func TestStatJSON(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "stat", "--output", "json", dir)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}

	var result struct {
		Exists    bool `json:"exists"`
		Directory bool `json:"directory"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("stat output is not JSON: %v\n%s", err, out)
	}
	if !result.Exists || !result.Directory {
		t.Errorf("stat reported %+v for an existing directory", result)
	}
}

func TestStatYAML(t *testing.T) {
	out, err := runCommand(t, "stat", "--output", "yaml", filepath.Join(t.TempDir(), "missing.txt"))
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !strings.Contains(out, "exists: false") {
		t.Errorf("yaml output = %q, want exists: false", out)
	}
}

func TestCwd(t *testing.T) {
	out, err := runCommand(t, "cwd")
	if err != nil {
		t.Fatalf("cwd failed: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Error("cwd printed nothing")
	}
}

func TestFindlibMissing(t *testing.T) {
	t.Setenv("LD_LIBRARY_PATH", t.TempDir())
	t.Setenv("DYLD_LIBRARY_PATH", t.TempDir())

	if _, err := runCommand(t, "findlib", "definitely-not-a-library"); err == nil {
		t.Error("findlib of a missing library should fail")
	}
}
