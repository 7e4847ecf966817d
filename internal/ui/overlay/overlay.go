// Package overlay floats one rendered block over another.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose lays top over base starting at line row. On each line, leading and
// trailing spaces of top are transparent and let base show through; the
// visible span in between replaces base at the same columns. base is padded
// to width and grown with blank lines when top reaches past its end.
// Both strings may carry ANSI styling.
func Compose(base, top string, width, row int) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	row = max(row, 0)

	for len(baseLines) < row+len(topLines) {
		baseLines = append(baseLines, "")
	}

	for i, topLine := range topLines {
		plain := ansi.Strip(topLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		// visible bounds in display columns
		startCol := ansi.StringWidth(plain) - ansi.StringWidth(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		if startCol >= width {
			continue
		}
		endCol = min(endCol, width)

		visible := ansi.Cut(topLine, startCol, endCol)

		baseLine := baseLines[row+i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		result := ansi.Cut(baseLine, 0, startCol) + visible
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[row+i] = result
	}

	return strings.Join(baseLines, "\n")
}
