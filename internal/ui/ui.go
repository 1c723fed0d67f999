// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the CLI's terminal output helpers: color-gated
// printers, section headers, count formatting, and the mutex-guarded log
// file used by cmd/jobpipe.
package ui

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Color instances used across the CLI. Disabled by InitColors when output
// isn't a TTY or color is explicitly turned off.
var (
	Green  = color.New(color.FgGreen)
	Yellow = color.New(color.FgYellow)
	Red    = color.New(color.FgRed)
	Cyan   = color.New(color.FgCyan)
	Dim    = color.New(color.Faint)
)

// InitColors disables color output when noColor is set, NO_COLOR is present
// in the environment, or stdout isn't a terminal.
func InitColors(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// Header prints a top-level section title.
func Header(title string) {
	_, _ = Cyan.Printf("\n=== %s ===\n", title)
}

// SubHeader prints a nested section title.
func SubHeader(title string) {
	_, _ = Cyan.Printf("\n%s\n", title)
}

// Label formats a field label for a "Label: value" line, right-padded so
// summary columns align.
func Label(text string) string {
	return Dim.Sprintf("%-16s", text)
}

// CountText formats an integer count, dimmed, for result summaries.
func CountText(n int64) string {
	return Dim.Sprint(strconv.FormatInt(n, 10))
}

// DimText dims an arbitrary string for secondary detail lines.
func DimText(s string) string {
	return Dim.Sprint(s)
}

// Info prints an informational line in the default color.
func Info(msg string) {
	fmt.Println(msg)
}

// Infof prints a formatted informational line.
func Infof(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Success prints a message in green, prefixed with a checkmark.
func Success(msg string) {
	_, _ = Green.Printf("✓ %s\n", msg)
}

// Successf prints a formatted success message.
func Successf(format string, args ...interface{}) {
	_, _ = Green.Printf("✓ "+format+"\n", args...)
}

// Warning prints a message in yellow, prefixed with a warning marker.
func Warning(msg string) {
	_, _ = Yellow.Printf("! %s\n", msg)
}

// Warningf prints a formatted warning message.
func Warningf(format string, args ...interface{}) {
	_, _ = Yellow.Printf("! "+format+"\n", args...)
}
