// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package scopeguard

import "testing"

func TestRunOnce(t *testing.T) {
	calls := 0
	g := New(func() { calls++ })
	g.Run()
	g.Run()
	if calls != 1 {
		t.Errorf("cleanup ran %d times, want 1", calls)
	}
}

func TestDeferredRun(t *testing.T) {
	calls := 0
	func() {
		g := New(func() { calls++ })
		defer g.Run()
	}()
	if calls != 1 {
		t.Errorf("cleanup ran %d times, want 1", calls)
	}
}

func TestEarlyReleaseThenDefer(t *testing.T) {
	calls := 0
	func() {
		g := New(func() { calls++ })
		defer g.Run()
		g.Run() // release early, the defer must not re-run it
	}()
	if calls != 1 {
		t.Errorf("cleanup ran %d times, want 1", calls)
	}
}

func TestDismiss(t *testing.T) {
	calls := 0
	g := New(func() { calls++ })
	g.Dismiss()
	g.Run()
	if calls != 0 {
		t.Errorf("dismissed cleanup ran %d times, want 0", calls)
	}
}

func TestNilFunc(t *testing.T) {
	g := New(nil)
	g.Run() // must not panic
}
