// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package fspath

import "runtime"

// Style captures the two platform-dependent aspects of path handling: the
// preferred separator character and whether drive-letter roots ("C:\")
// count as absolute. Everything else in the Path type is shared.
type Style struct {
	sep          byte
	driveLetters bool
}

// The two path conventions. Native is the convention of the host platform;
// the others exist so either convention can be exercised on any host.
var (
	Posix   = Style{sep: '/'}
	Windows = Style{sep: '\\', driveLetters: true}
	Native  = nativeStyle()
)

func nativeStyle() Style {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// Separator returns the style's preferred separator character.
func (st Style) Separator() byte {
	return st.sep
}

// hasDriveRoot reports whether s starts with a drive-letter root such as
// "C:\" (with the separator already normalized to st.sep). Always false for
// styles without drive letters.
func (st Style) hasDriveRoot(s string) bool {
	if !st.driveLetters || len(s) < 3 {
		return false
	}
	c := s[0]
	isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	return isLetter && s[1] == ':' && s[2] == st.sep
}

// isAbsolute reports whether s is absolute under this style: a leading
// separator, or a drive-letter root when the style supports them.
func (st Style) isAbsolute(s string) bool {
	return len(s) > 0 && (s[0] == st.sep || st.hasDriveRoot(s))
}
