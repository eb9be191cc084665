// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package fspath

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"

	"github.com/robokit/roboutil/scopeguard"
)

// DirPermission is the mode bits used when this package creates
// directories (before umask).
const DirPermission = 0o755

// tempSuffixLength is the length of the unique suffix appended to the base
// name by CreateTempDirectory.
const tempSuffixLength = 6

// Exists reports whether the path can be stat'ed. No distinction is made
// between "does not exist" and any other stat failure.
func Exists(p Path) bool {
	_, err := os.Stat(p.String())
	return err == nil
}

// IsDirectory reports whether the path exists and is a directory. Stat
// failures of any kind fold into false.
func IsDirectory(p Path) bool {
	info, err := os.Stat(p.String())
	return err == nil && info.IsDir()
}

// IsRegularFile reports whether the path exists and is a regular file.
// Stat failures of any kind fold into false.
func IsRegularFile(p Path) bool {
	info, err := os.Stat(p.String())
	return err == nil && info.Mode().IsRegular()
}

// FileSize returns the size of the file at p in bytes.
//
// Unlike the boolean predicates, failures here are surfaced: querying a
// directory fails with an error matching syscall.EISDIR, and a failed stat
// fails with the underlying OS error (the native error code remains
// reachable through errors.Is / errors.As).
func FileSize(p Path) (uint64, error) {
	if IsDirectory(p) {
		return 0, fmt.Errorf("cannot get file size of %q: %w", p.String(), syscall.EISDIR)
	}
	info, err := os.Stat(p.String())
	if err != nil {
		return 0, fmt.Errorf("cannot get file size of %q: %w", p.String(), err)
	}
	return uint64(info.Size()), nil
}

// CreateDirectories creates the directory at p, creating missing parents
// along the way and skipping prefixes that already exist. It returns true
// if the full path is a directory afterwards. Calling it on an existing
// directory tree succeeds.
func CreateDirectories(p Path) bool {
	return createDirectories(p) == nil
}

// createDirectories walks p's segments root to leaf, issuing one mkdir per
// missing prefix. An "already exists" result at any step counts as success
// for that step; the first other OS error aborts the walk. The final
// re-check guards against a non-directory sitting at the target path.
func createDirectories(p Path) error {
	built := NewStyled(p.style, "")
	for _, seg := range p.segments {
		if !built.Empty() || seg == "" {
			built = built.appendRaw(seg)
		} else {
			built = NewStyled(p.style, seg)
		}
		if !Exists(built) {
			if err := os.Mkdir(built.String(), DirPermission); err != nil && !errors.Is(err, fs.ErrExist) {
				return err
			}
		}
	}
	if !IsDirectory(built) {
		return fmt.Errorf("%q is not a directory", built.String())
	}
	return nil
}

// Remove removes exactly one filesystem entry. A directory is removed only
// if empty; a regular file is unlinked. Anything else, including a path
// that does not exist or a special file, returns false.
func Remove(p Path) bool {
	info, err := os.Stat(p.String())
	if err != nil {
		return false
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return false
	}
	return os.Remove(p.String()) == nil
}

// RemoveAll removes the entry at p and, if it is a directory, everything
// beneath it. It returns true only if the path no longer exists afterwards.
//
// The walk aborts on the first child that cannot be removed; entries
// already deleted stay deleted. There is no rollback, and no cross-process
// exclusion: another actor removing entries mid-walk surfaces as a failed
// step.
func RemoveAll(p Path) bool {
	if !IsDirectory(p) {
		return Remove(p)
	}

	dir, err := os.Open(p.String())
	if err != nil {
		return false
	}
	closer := scopeguard.New(func() { _ = dir.Close() })
	defer closer.Run()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return false
	}
	for _, name := range names {
		sub := p.JoinString(name)
		if IsDirectory(sub) {
			if !RemoveAll(sub) {
				return false
			}
		} else if !Remove(sub) {
			return false
		}
	}

	// The directory handle must be released before the directory itself
	// can be removed on Windows.
	closer.Run()
	Remove(p)
	return !Exists(p)
}

// TempDirectoryPath returns the base directory for temporary entries: the
// OS temp path on Windows, and on POSIX systems the TMPDIR environment
// variable with "/tmp" as fallback. No directory is created.
func TempDirectoryPath() Path {
	return tempDirectoryPath()
}

// CreateTempDirectory creates a uniquely named directory inside parent,
// named baseName followed by a 6-character unique suffix. The parent is
// created first if needed; failure to create it is returned as an error
// carrying the underlying OS error.
//
// The directory creation itself is atomic: candidate names are generated
// until one is claimed by mkdir, so the returned directory is guaranteed
// to be newly created and empty. This is the only operation in the package
// that is safe to race against itself on the same path.
func CreateTempDirectory(baseName string, parent Path) (Path, error) {
	if err := createDirectories(parent); err != nil {
		return New(""), fmt.Errorf("could not create the parent directory: %w", err)
	}

	// Mirror mkdtemp: keep generating suffixes until mkdir claims a name
	// that did not exist. Bounded so a pathological collision rate (or a
	// parent we cannot write to reporting EEXIST) cannot spin forever.
	for attempt := 0; attempt < 10000; attempt++ {
		candidate := parent.JoinString(baseName + randomSuffix(tempSuffixLength))
		err := os.Mkdir(candidate.String(), 0o700)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return New(""), fmt.Errorf("could not create the temp directory: %w", err)
		}
	}
	return New(""), fmt.Errorf("could not create the temp directory: %w", fs.ErrExist)
}

// CurrentPath returns the process's current working directory.
func CurrentPath() (Path, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return New(""), fmt.Errorf("cannot get current working directory: %w", err)
	}
	return New(cwd), nil
}
