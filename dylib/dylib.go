// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package dylib

import (
	"errors"
	"fmt"

	"github.com/robokit/roboutil/envutil"
	"github.com/robokit/roboutil/fspath"
	"github.com/robokit/roboutil/strutil"
)

// ErrClosed is returned by Library methods after Close.
var ErrClosed = errors.New("dylib: library is closed")

// Library is a loaded shared library. The zero value is not usable; obtain
// one through Open and release it with Close.
type Library struct {
	path   string
	handle uintptr
}

// Open loads the shared library at path.
func Open(path string) (*Library, error) {
	handle, err := loadLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load library %s: %w", path, err)
	}
	return &Library{path: path, handle: handle}, nil
}

// Path returns the path the library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// Symbol returns the address of the named symbol.
func (l *Library) Symbol(name string) (uintptr, error) {
	if l.handle == 0 {
		return 0, ErrClosed
	}
	addr, err := lookupSymbol(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("symbol %s not found in %s: %w", name, l.path, err)
	}
	return addr, nil
}

// HasSymbol reports whether the library exports the named symbol.
func (l *Library) HasSymbol(name string) bool {
	_, err := l.Symbol(name)
	return err == nil
}

// Close unloads the library. Symbol addresses obtained earlier become
// invalid. Closing an already closed library is an error.
func (l *Library) Close() error {
	if l.handle == 0 {
		return ErrClosed
	}
	if err := closeLibrary(l.handle); err != nil {
		return fmt.Errorf("failed to unload library %s: %w", l.path, err)
	}
	l.handle = 0
	return nil
}

// FilenameForLibrary returns the platform filename for a bare library
// name: "lib<name>.so" on Linux, "lib<name>.dylib" on macOS, "<name>.dll"
// on Windows.
func FilenameForLibrary(name string) string {
	return solibPrefix + name + solibExtension
}

// FindLibrary searches the platform's dynamic loader search path
// (LD_LIBRARY_PATH, DYLD_LIBRARY_PATH, or PATH) for the named library and
// returns its full path, or the empty string if it is not found.
func FindLibrary(name string) string {
	searchPath := envutil.Get(loaderPathVar)
	filename := FilenameForLibrary(name)
	for _, dir := range strutil.SplitNonEmpty(searchPath, loaderPathSeparator) {
		candidate := fspath.New(dir).JoinString(filename)
		if fspath.IsRegularFile(candidate) {
			return candidate.String()
		}
	}
	return ""
}

// PathForLibrary returns the full path of the named library inside dir, or
// the empty string if no regular file with the platform filename exists
// there.
func PathForLibrary(dir, name string) string {
	candidate := fspath.New(dir).JoinString(FilenameForLibrary(name))
	if fspath.IsRegularFile(candidate) {
		return candidate.String()
	}
	return ""
}
