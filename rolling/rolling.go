// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package rolling

// Mean accumulates values over a fixed-size window and reports their
// rolling mean. Until the window fills, the mean covers only the values
// seen so far; afterwards each new value displaces the oldest one.
//
// Mean is not safe for concurrent use.
type Mean[T ~float32 | ~float64] struct {
	buf    []T
	next   int
	sum    T
	filled bool
}

// NewMean returns an accumulator with the given window size.
// It panics if window is not positive.
func NewMean[T ~float32 | ~float64](window int) *Mean[T] {
	if window <= 0 {
		panic("rolling: window size must be positive")
	}
	return &Mean[T]{buf: make([]T, window)}
}

// Accumulate adds v to the window, displacing the oldest value once the
// window is full.
func (m *Mean[T]) Accumulate(v T) {
	m.sum -= m.buf[m.next]
	m.sum += v
	m.buf[m.next] = v
	m.next++
	if m.next >= len(m.buf) {
		m.filled = true
		m.next = 0
	}
}

// Count returns the number of values currently contributing to the mean,
// at most the window size.
func (m *Mean[T]) Count() int {
	if m.filled {
		return len(m.buf)
	}
	return m.next
}

// Value returns the rolling mean of the accumulated values.
// It panics if nothing has been accumulated yet.
func (m *Mean[T]) Value() T {
	n := m.Count()
	if n == 0 {
		panic("rolling: no values accumulated")
	}
	return m.sum / T(n)
}
