package cliout

import (
	"strings"
	"testing"

	"github.com/robokit/roboutil/testutil"
)

func TestLabelOutput(t *testing.T) {
	NoColor()
	out := testutil.CaptureOutput(t, func() error {
		Label("Size", "42")
		return nil
	})
	if !strings.Contains(out, "Size:") || !strings.Contains(out, "42") {
		t.Errorf("Label output = %q", out)
	}
}

func TestSuccessAndErrorSymbols(t *testing.T) {
	NoColor()
	out := testutil.CaptureOutput(t, func() error {
		Success("made %s", "it")
		Error("lost %s", "it")
		return nil
	})
	if !strings.Contains(out, ASCIICheck) || !strings.Contains(out, "made it") {
		t.Errorf("Success output = %q", out)
	}
	if !strings.Contains(out, ASCIICross) || !strings.Contains(out, "lost it") {
		t.Errorf("Error output = %q", out)
	}
}

func TestForceColor(t *testing.T) {
	ForceColor()
	defer NoColor()
	out := testutil.CaptureOutput(t, func() error {
		Success("colored")
		return nil
	})
	if !strings.Contains(out, Reset) {
		t.Errorf("forced color output missing ANSI codes: %q", out)
	}
}

func TestHeader(t *testing.T) {
	NoColor()
	out := testutil.CaptureOutput(t, func() error {
		Header("Paths")
		return nil
	})
	if !strings.Contains(out, "Paths") || !strings.Contains(out, "=====") {
		t.Errorf("Header output = %q", out)
	}
}
