//go:build !windows && !darwin

// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package dylib

const (
	loaderPathVar       = "LD_LIBRARY_PATH"
	loaderPathSeparator = ':'
	solibPrefix         = "lib"
	solibExtension      = ".so"
)
