// Package dylib loads shared libraries and locates them on the platform's
// dynamic loader search path.
//
// Loading goes through the native loader: dlopen/dlsym via
// github.com/ebitengine/purego on POSIX systems and
// LoadLibrary/GetProcAddress via golang.org/x/sys/windows on Windows.
// FindLibrary resolves a bare library name ("mylib") to a full path by
// probing each directory of LD_LIBRARY_PATH, DYLD_LIBRARY_PATH, or PATH
// for the platform filename (lib prefix and .so/.dylib/.dll extension).
//
// Symbol addresses are raw pointers; calling through them is the caller's
// responsibility (purego.RegisterFunc or syscall wrappers).
package dylib
