// Package strutil provides small string splitting and joining primitives
// shared across the roboutil collection.
//
// The Split function implements the exact segment decomposition used by the
// fspath package: delimiter-separated tokens where a trailing delimiter is
// absorbed rather than producing an empty tail element.
package strutil
