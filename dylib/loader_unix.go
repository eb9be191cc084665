//go:build !windows

// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package dylib

import "github.com/ebitengine/purego"

func loadLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}
