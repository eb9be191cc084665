// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package scopeguard

// Guard runs a cleanup function exactly once, on every exit path it is
// deferred from, unless dismissed first.
type Guard struct {
	fn   func()
	done bool
}

// New returns a guard that will invoke fn when Run is called.
// Typical usage defers Run immediately after acquiring the resource:
//
//	f, err := os.Open(name)
//	if err != nil {
//		return err
//	}
//	g := scopeguard.New(func() { _ = f.Close() })
//	defer g.Run()
func New(fn func()) *Guard {
	return &Guard{fn: fn}
}

// Run invokes the cleanup function if it has not already run and the guard
// has not been dismissed. Calling Run again is a no-op, so a guard may be
// released early and still be safely deferred.
func (g *Guard) Run() {
	if g.done || g.fn == nil {
		return
	}
	g.done = true
	g.fn()
}

// Dismiss cancels the guard so the cleanup function never runs. Use this
// when ownership of the resource is handed off to the caller.
func (g *Guard) Dismiss() {
	g.done = true
}
