// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package strutil

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty input", "", nil},
		{"no delimiter", "abc", []string{"abc"}},
		{"simple", "a/b/c", []string{"a", "b", "c"}},
		{"leading delimiter keeps empty head", "/a/b", []string{"", "a", "b"}},
		{"trailing delimiter absorbed", "a/b/", []string{"a", "b"}},
		{"interior empty kept", "a//b", []string{"a", "", "b"}},
		{"lone delimiter", "/", []string{""}},
		{"double delimiter", "//", []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.in, '/'); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitNonEmpty(t *testing.T) {
	got := SplitNonEmpty("/a//b/", '/')
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitNonEmpty = %v, want %v", got, want)
	}
	if got := SplitNonEmpty("", ':'); len(got) != 0 {
		t.Errorf("SplitNonEmpty(\"\") = %v, want empty", got)
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]string{"a", "b", "c"}, '/'); got != "a/b/c" {
		t.Errorf("Join = %q, want %q", got, "a/b/c")
	}
	if got := Join(nil, '/'); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}

	// Round trip with Split for a delimiter-free tail.
	parts := Split("a/b/c", '/')
	if got := Join(parts, '/'); got != "a/b/c" {
		t.Errorf("Join(Split(...)) = %q, want %q", got, "a/b/c")
	}
}

func TestFindAndReplace(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		find    string
		replace string
		want    string
	}{
		{"single occurrence", "hello world", "world", "go", "hello go"},
		{"multiple occurrences", "aaa", "a", "b", "bbb"},
		{"no occurrence", "abc", "x", "y", "abc"},
		{"empty find unchanged", "abc", "", "y", "abc"},
		{"replace with empty", "a-b-c", "-", "", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindAndReplace(tt.in, tt.find, tt.replace); got != tt.want {
				t.Errorf("FindAndReplace(%q, %q, %q) = %q, want %q", tt.in, tt.find, tt.replace, got, tt.want)
			}
		})
	}
}
