//go:build !windows

// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package fspath

import "github.com/robokit/roboutil/envutil"

// tempDirectoryPath prefers TMPDIR and falls back to /tmp. An empty TMPDIR
// is treated the same as an unset one.
func tempDirectoryPath() Path {
	return New(envutil.GetDefault("TMPDIR", "/tmp"))
}
