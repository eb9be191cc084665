// Package procutil provides cross-platform process queries.
//
// It wraps github.com/shirou/gopsutil/v4/process, which uses the native
// platform APIs (Windows API, /proc, sysctl) instead of the
// os.FindProcess + Signal(0) idiom that misreports stale PIDs on Windows.
package procutil
