// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package fspath

import "crypto/rand"

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomSuffix returns n random characters from a lowercase alphanumeric
// alphabet, suitable for the unique portion of a temp directory name.
func randomSuffix(n int) string {
	buf := make([]byte, n)
	// rand.Read never fails on supported platforms (it aborts the program
	// instead), so the error is intentionally not consulted.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return string(buf)
}
