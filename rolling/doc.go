// Package rolling provides a fixed-window rolling mean accumulator, a
// small self-contained replacement for a statistics dependency.
package rolling
