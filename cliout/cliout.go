// Copyright (c) Robokit Authors. All rights reserved.
// Licensed under the MIT License.

// Package cliout provides consistent, terminal-aware output formatting for
// roboutil commands: plain labeled lines when piped, ANSI styling and
// Unicode symbols when writing to a terminal.
package cliout

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"

	BrightRed   = "\033[91m"
	BrightGreen = "\033[92m"
)

// Symbols with ASCII fallbacks for terminals without Unicode support.
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
	ASCIICheck  = "[+]"
	ASCIICross  = "[-]"
)

var (
	mu      sync.RWMutex
	noColor = !detectTerminal()
)

// detectTerminal reports whether stdout is an interactive terminal and
// color has not been disabled via NO_COLOR.
func detectTerminal() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// paint wraps s in the given ANSI code unless color is disabled.
func paint(code, s string) string {
	mu.RLock()
	plain := noColor
	mu.RUnlock()
	if plain {
		return s
	}
	return code + s + Reset
}

// symbol returns the Unicode symbol, or its ASCII fallback when color (and
// with it fancy output) is disabled.
func symbol(unicode, ascii string) string {
	mu.RLock()
	plain := noColor
	mu.RUnlock()
	if plain {
		return ascii
	}
	return unicode
}

// Header prints a bold header with a divider.
func Header(text string) {
	fmt.Printf("\n%s\n", paint(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Label prints an aligned "name: value" line.
func Label(name, value string) {
	fmt.Printf("  %s %s\n", paint(Gray, name+":"), value)
}

// Success prints a success message with a green check mark.
func Success(format string, args ...any) {
	fmt.Printf("%s %s\n", paint(BrightGreen, symbol(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Error prints an error message with a red cross.
func Error(format string, args ...any) {
	fmt.Printf("%s %s\n", paint(BrightRed, symbol(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// Item prints an indented item line.
func Item(format string, args ...any) {
	fmt.Printf("   %s\n", fmt.Sprintf(format, args...))
}
