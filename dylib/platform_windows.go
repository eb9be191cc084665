//go:build windows

// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package dylib

const (
	loaderPathVar       = "PATH"
	loaderPathSeparator = ';'
	solibPrefix         = ""
	solibExtension      = ".dll"
)
