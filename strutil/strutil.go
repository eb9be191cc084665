// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package strutil

import "strings"

// Split splits input on the single-byte delimiter delim.
//
// Unlike strings.Split, a trailing delimiter does not produce a trailing
// empty element and an empty input yields a nil slice. Leading and interior
// delimiters still produce empty elements, so "/a" splits into ["", "a"]
// while "a/" splits into ["a"]. This is the decomposition rule the fspath
// package relies on for path segments.
func Split(input string, delim byte) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, string(delim))
	if last := len(parts) - 1; parts[last] == "" {
		parts = parts[:last]
	}
	return parts
}

// SplitNonEmpty splits input on delim, dropping all empty elements.
func SplitNonEmpty(input string, delim byte) []string {
	parts := Split(input, delim)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Join concatenates the elements of parts, placing the single-byte
// delimiter delim between them. It is the inverse of Split for inputs
// without a trailing delimiter.
func Join(parts []string, delim byte) string {
	return strings.Join(parts, string(delim))
}

// FindAndReplace returns a copy of input with every occurrence of find
// replaced by replace. An empty find returns the input unchanged.
func FindAndReplace(input, find, replace string) string {
	if find == "" {
		return input
	}
	return strings.ReplaceAll(input, find, replace)
}
