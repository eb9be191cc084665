// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/robokit/roboutil/fspath"
)

// ExecutableName returns the name of the current executable, without its
// directory.
func ExecutableName() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable name: %w", err)
	}
	return fspath.New(exe).Filename().String(), nil
}

// IsProcessRunning checks if a process with the given PID is running.
// Works cross-platform; gopsutil handles the platform-specific probing, so
// stale PIDs are reported correctly on Windows as well.
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	exists, err := process.PidExists(int32(pid))
	return err == nil && exists
}
