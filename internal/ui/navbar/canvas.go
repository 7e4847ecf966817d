package navbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// cell is one terminal cell of the capsule interior.
// The trailing cells of a wide grapheme have tail set and no text.
type cell struct {
	text string
	fg   lipgloss.Color
	bg   lipgloss.Color
	bold bool
	tail bool
}

func (c cell) sameStyle(o cell) bool {
	return c.fg == o.fg && c.bg == o.bg && c.bold == o.bold
}

// canvas is a grid of cells painted layer by layer.
type canvas struct {
	width int
	rows  [][]cell
}

func newCanvas(width, height int, bg lipgloss.Color) *canvas {
	c := &canvas{width: width, rows: make([][]cell, height)}
	for y := range c.rows {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{text: " ", bg: bg}
		}
		c.rows[y] = row
	}
	return c
}

// text writes s starting at column x of row y, keeping the background of
// each cell it covers. Graphemes that would cross the right edge are
// dropped. It returns the column after the last cell written.
func (c *canvas) text(y, x int, s string, fg lipgloss.Color, bold bool) int {
	if y < 0 || y >= len(c.rows) {
		return x
	}
	row := c.rows[y]
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if w == 0 {
			continue
		}
		if x < 0 {
			x += w
			continue
		}
		if x+w > c.width {
			break
		}
		row[x] = cell{text: g.Str(), fg: fg, bg: row[x].bg, bold: bold}
		for k := 1; k < w; k++ {
			row[x+k] = cell{fg: fg, bg: row[x+k].bg, bold: bold, tail: true}
		}
		x += w
	}
	return x
}

// setBg sets the background of cells [start, end) of row y.
func (c *canvas) setBg(y, start, end int, bg lipgloss.Color) {
	if y < 0 || y >= len(c.rows) {
		return
	}
	start, end = max(start, 0), min(end, c.width)
	for x := start; x < end; x++ {
		c.rows[y][x].bg = bg
	}
}

// tint replaces the background of cells [start, end) on every row with
// fn applied to it.
func (c *canvas) tint(start, end int, fn func(lipgloss.Color) lipgloss.Color) {
	start, end = max(start, 0), min(end, c.width)
	for _, row := range c.rows {
		for x := start; x < end; x++ {
			row[x].bg = fn(row[x].bg)
		}
	}
}

// lines renders the canvas, merging runs of cells that share a style.
func (c *canvas) lines() []string {
	out := make([]string, len(c.rows))
	for y, row := range c.rows {
		var sb strings.Builder
		var run strings.Builder
		var cur cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(styleOf(cur).Render(run.String()))
			run.Reset()
		}
		for x, cl := range row {
			if x == 0 || !cl.sameStyle(cur) {
				flush()
				cur = cl
			}
			if !cl.tail {
				run.WriteString(cl.text)
			}
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func styleOf(c cell) lipgloss.Style {
	st := lipgloss.NewStyle().Background(c.bg).Bold(c.bold)
	if c.fg != "" {
		st = st.Foreground(c.fg)
	}
	return st
}
