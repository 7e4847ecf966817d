// Package render provides text fitting utilities for fixed-width cells.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text. It is a single cell wide.
const Ellipsis = "…"

// Sanitize removes control characters (except tab/space) and replaces
// non-breaking spaces with regular spaces. Invalid UTF-8 bytes are dropped.
// Item titles and badges come from callers and may carry anything.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			i++
			continue
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// needsSanitize returns true if the string contains bytes that need sanitizing.
func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' {
			return true
		}
		if b == 0x7f || b >= 0x80 {
			// defer to the slow path for anything non-ASCII
			return !utf8.ValidString(s) || strings.ContainsFunc(s, func(r rune) bool {
				return r == '\u00a0' || (r != '\t' && unicode.IsControl(r))
			})
		}
	}
	return false
}

// Truncate shortens a string to fit within maxWidth cells, ending with a
// single-cell ellipsis when cut. Wide characters are measured with runewidth.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, Ellipsis)
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Center truncates s to width and surrounds it with spaces so that the
// result is exactly width cells wide. Extra odd space goes to the right.
func Center(s string, width int) string {
	s = Truncate(s, width)
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Cut limits already styled text to width cells without breaking escape
// sequences, padding shorter lines with spaces.
func Cut(styled string, width int) string {
	if width <= 0 {
		return ""
	}
	cut := ansi.Truncate(styled, width, "")
	if w := ansi.StringWidth(cut); w < width {
		cut += strings.Repeat(" ", width-w)
	}
	return cut
}
