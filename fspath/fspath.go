// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package fspath

import (
	"slices"
	"strings"

	"github.com/robokit/roboutil/strutil"
)

// Path is a value type representing a filesystem path. It stores the path
// string with all separators normalized to the style's preferred separator,
// together with its segment decomposition. The segments are always
// re-derivable by re-splitting the string form; no method performs I/O.
//
// Paths are plain values: copy freely, compare with Equal. The zero value
// is an empty path.
type Path struct {
	style    Style
	s        string
	segments []string
}

// New parses s into a Path using the host platform's convention. Both "/"
// and "\" in the input are treated as separators and canonicalized.
func New(s string) Path {
	return NewStyled(Native, s)
}

// NewStyled parses s into a Path under an explicit style. This exists so
// either platform convention can be exercised regardless of the host.
func NewStyled(st Style, s string) Path {
	norm := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return rune(st.sep)
		}
		return r
	}, s)
	return Path{
		style:    st,
		s:        norm,
		segments: strutil.Split(norm, st.sep),
	}
}

// String returns the path delimited with the style's preferred separator.
func (p Path) String() string {
	return p.s
}

// Empty reports whether the path is empty.
func (p Path) Empty() bool {
	return p.s == ""
}

// Style returns the convention the path was parsed under.
func (p Path) Style() Style {
	return p.style
}

// Segments returns the path's components from root to leaf. An absolute
// POSIX-style path has an empty first segment; a drive-letter path has the
// drive token ("C:") first. The returned slice is a copy.
func (p Path) Segments() []string {
	return slices.Clone(p.segments)
}

// IsAbsolute reports whether the path is absolute: it starts with the
// preferred separator, or with a drive-letter root under the Windows
// convention.
func (p Path) IsAbsolute() bool {
	return p.style.isAbsolute(p.s)
}

// Parent returns the parent directory of the path.
//
// An empty path has an empty parent. A single-segment relative path has
// parent ".". The root of an absolute path is its own parent and always
// keeps its trailing separator: Parent of "/foo" is "/", and Parent of
// "C:\foo" is "C:\", never "C:".
func (p Path) Parent() Path {
	if p.Empty() {
		return NewStyled(p.style, "")
	}

	if len(p.segments) == 1 {
		if p.IsAbsolute() {
			if p.style.hasDriveRoot(p.s) {
				return NewStyled(p.style, p.segments[0]+string(p.style.sep))
			}
			return NewStyled(p.style, string(p.style.sep))
		}
		return NewStyled(p.style, ".")
	}

	// Keep the root separator when trimming "C:\foo" down to its drive.
	if len(p.segments) == 2 && p.style.hasDriveRoot(p.s) {
		return NewStyled(p.style, p.segments[0]+string(p.style.sep))
	}

	parent := NewStyled(p.style, "")
	for _, seg := range p.segments[:len(p.segments)-1] {
		if parent.Empty() && (!p.IsAbsolute() || p.style.hasDriveRoot(p.s)) {
			// Relative paths and drive letters must not gain a leading
			// separator, so the first piece is copied directly.
			parent = NewStyled(p.style, seg)
		} else {
			parent = parent.appendRaw(seg)
		}
	}
	return parent
}

// Filename returns the last segment of the path, or an empty path if the
// path is empty.
func (p Path) Filename() Path {
	if p.Empty() {
		return NewStyled(p.style, "")
	}
	return NewStyled(p.style, p.segments[len(p.segments)-1])
}

// Extension returns "." followed by the text after the last "." in the
// path, or an empty path if the path contains no ".". Only the final
// dot-delimited token is captured: the extension of "a.tar.gz" is ".gz".
// This single-dot rule is a behavioral contract, kept even where other
// path libraries would report a multi-part extension.
func (p Path) Extension() Path {
	tokens := strutil.Split(p.s, '.')
	if len(tokens) <= 1 {
		return NewStyled(p.style, "")
	}
	return NewStyled(p.style, "."+tokens[len(tokens)-1])
}

// Join returns the combination of p and other.
//
// If other is absolute it replaces p entirely, matching conventional
// path-joining behavior. Otherwise other is appended after a single
// separator; no separator is inserted when p is empty or already ends in
// one, so "a/" joined with "b" is "a/b", not "a//b".
func (p Path) Join(other Path) Path {
	if other.IsAbsolute() || p.Empty() {
		return other
	}
	s := p.s
	if s[len(s)-1] != p.style.sep {
		s += string(p.style.sep)
	}
	return NewStyled(p.style, s+other.s)
}

// JoinString combines p with a path parsed from s under p's style.
func (p Path) JoinString(s string) Path {
	return p.Join(NewStyled(p.style, s))
}

// Append replaces p with the combination of p and other, with the same
// semantics as Join.
func (p *Path) Append(other Path) {
	*p = p.Join(other)
}

// AppendString replaces p with the combination of p and a path parsed
// from s under p's style.
func (p *Path) AppendString(s string) {
	*p = p.JoinString(s)
}

// appendRaw appends one component, inserting a separator even when the
// path is empty. This is what turns the empty root segment of an absolute
// path into a leading "/" during reconstruction; Parent and the directory
// walk in CreateDirectories depend on it.
func (p Path) appendRaw(seg string) Path {
	s := p.s
	if s == "" || s[len(s)-1] != p.style.sep {
		s += string(p.style.sep)
	}
	return NewStyled(p.style, s+seg)
}

// Equal reports whether a and b have the same normalized string form.
// No filesystem access occurs during comparison.
func Equal(a, b Path) bool {
	return a.s == b.s
}

// Compare orders two paths by their normalized string forms, returning
// -1, 0, or +1 in the manner of strings.Compare.
func Compare(a, b Path) int {
	return strings.Compare(a.s, b.s)
}

// RemoveExtension returns p with up to n trailing extensions removed,
// truncating at the last "." each time. It stops early once no "."
// remains; n <= 0 returns p unchanged.
func RemoveExtension(p Path, n int) Path {
	out := p
	for i := 0; i < n; i++ {
		idx := strings.LastIndexByte(out.s, '.')
		if idx < 0 {
			return out
		}
		out = NewStyled(out.style, out.s[:idx])
	}
	return out
}
