// Package ui holds terminal presentation helpers for the CLI.
package ui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// UseColor reports whether ANSI styling should be applied to stdout.
// It respects NO_COLOR, CLICOLOR_FORCE, CLICOLOR, and TTY detection.
func UseColor() bool {
	// https://no-color.org — any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	// CLICOLOR_FORCE=1 forces color even without a TTY.
	if strings.TrimSpace(os.Getenv("CLICOLOR_FORCE")) == "1" {
		return true
	}
	// CLICOLOR=0 explicitly disables color.
	if strings.TrimSpace(os.Getenv("CLICOLOR")) == "0" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Bold wraps s in ANSI bold codes when styling is enabled.
func Bold(s string) string {
	if !UseColor() {
		return s
	}
	return "\x1b[1m" + s + "\x1b[0m"
}

// Muted wraps s in a dim style when styling is enabled.
func Muted(s string) string {
	if !UseColor() {
		return s
	}
	return "\x1b[2m" + s + "\x1b[0m"
}
