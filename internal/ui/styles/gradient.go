package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders text in bold, shading each grapheme from one
// color to the other in HCL space. Whitespace keeps its place in the ramp
// but is written unstyled.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	bold := lipgloss.NewStyle().Bold(true)
	if len(clusters) < 2 {
		return bold.Foreground(from).Render(text)
	}

	start, ok := parseColor(from)
	if !ok {
		return bold.Foreground(from).Render(text)
	}
	end, ok := parseColor(to)
	if !ok {
		end = start
	}
	last := float64(len(clusters) - 1)

	var b strings.Builder
	for i, cl := range clusters {
		if strings.TrimSpace(cl) == "" {
			b.WriteString(cl)
			continue
		}
		c := start.BlendHcl(end, float64(i)/last).Clamped()
		b.WriteString(bold.Foreground(lipgloss.Color(c.Hex())).Render(cl))
	}
	return b.String()
}
