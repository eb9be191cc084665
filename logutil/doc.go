// Package logutil configures the process-wide structured logger (log/slog)
// used by roboutil commands: text or JSON handlers on stderr, with a debug
// gate controlled programmatically or via ROBOUTIL_DEBUG=true.
package logutil
