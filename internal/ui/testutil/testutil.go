// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:?]*[A-Za-z]`)

// StripANSI removes ANSI escape sequences from a string for easier testing.
// This allows comparing rendered output without style interference.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// MeasureWidth returns the visual width of a string, accounting for
// wide characters and stripping ANSI codes.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// SplitLines strips ANSI codes and splits output into lines, removing
// trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for _, line := range SplitLines(output) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// Column returns the visual column at which substr starts in line, or -1.
func Column(line, substr string) int {
	line = StripANSI(line)
	idx := strings.Index(line, substr)
	if idx < 0 {
		return -1
	}
	return lipgloss.Width(line[:idx])
}
