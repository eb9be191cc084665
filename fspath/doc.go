// Package fspath provides a portable filesystem path value type and the
// directory operations built on it.
//
// The package has two layers. Path is a pure value: it parses a string into
// a normalized form plus its segment decomposition and answers structural
// questions (IsAbsolute, Parent, Filename, Extension, Join) without ever
// touching the filesystem. The free functions (Exists, IsDirectory,
// FileSize, CreateDirectories, Remove, RemoveAll, CreateTempDirectory,
// CurrentPath) take Path values and issue synchronous OS calls.
//
// # Platform conventions
//
// Both the POSIX ("/", leading-separator absolute) and Windows ("\",
// leading separator or drive-letter root) conventions are modeled by the
// Style type. New uses the host's native convention; NewStyled pins one
// explicitly, which keeps drive-letter behavior testable on any platform.
//
// # Error handling
//
// Operations come in two idioms. Structural predicates and the bulk
// mutators (CreateDirectories, Remove, RemoveAll) return booleans and fold
// every OS failure into false, because callers use them as cheap
// predicates. Operations whose silent failure would corrupt caller logic
// (FileSize, CurrentPath, CreateTempDirectory) return errors wrapping the
// native OS error. Nothing retries, and no operation other than
// CreateTempDirectory is safe to race against itself on the same path.
//
// Symbolic-link resolution, permission semantics, and file content I/O are
// out of scope.
package fspath
