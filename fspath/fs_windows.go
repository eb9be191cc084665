//go:build windows

// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package fspath

import "os"

// tempDirectoryPath uses the OS temp path API (GetTempPath, via os.TempDir).
func tempDirectoryPath() Path {
	return New(os.TempDir())
}
