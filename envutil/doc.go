// Package envutil provides environment variable access with explicit error
// values.
//
// Every operation returns its result directly; there is no process-wide
// "last error" state to consult after a call. The fspath package uses Get
// for temporary-directory discovery (TMPDIR on POSIX systems) and the dylib
// package uses it to read the platform's dynamic loader search path.
package envutil
