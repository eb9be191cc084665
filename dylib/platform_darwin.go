//go:build darwin

// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package dylib

const (
	loaderPathVar       = "DYLD_LIBRARY_PATH"
	loaderPathSeparator = ':'
	solibPrefix         = "lib"
	solibExtension      = ".dylib"
)
