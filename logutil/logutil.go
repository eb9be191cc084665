// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// EnvDebug enables debug logging when set to "true".
const EnvDebug = "ROBOUTIL_DEBUG"

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	debugEnabled bool
	isStructured bool
	outputWriter io.Writer = os.Stderr
)

func init() {
	SetupLogger(os.Getenv(EnvDebug) == "true", false)
}

// SetupLogger configures the global logger. When debug is true, debug-level
// messages are emitted; when structured is true, output is JSON instead of
// text. The logger writes to stderr by default.
// Safe for concurrent use.
func SetupLogger(debug, structured bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = debug
	isStructured = structured
	rebuild()
}

// SetOutput redirects the logger, typically to a buffer in tests.
// Safe for concurrent use.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	outputWriter = w
	rebuild()
}

// rebuild recreates the logger from current settings. Caller holds mu.
func rebuild() {
	level := slog.LevelInfo
	if debugEnabled {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if isStructured {
		handler = slog.NewJSONHandler(outputWriter, opts)
	} else {
		handler = slog.NewTextHandler(outputWriter, opts)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// IsDebugEnabled reports whether debug logging is on, either
// programmatically or through the ROBOUTIL_DEBUG environment variable.
func IsDebugEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debugEnabled || os.Getenv(EnvDebug) == "true"
}

func logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) {
	if IsDebugEnabled() {
		logger().Debug(msg, args...)
	}
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	logger().Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	logger().Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	logger().Error(msg, args...)
}
