package styles

import "github.com/charmbracelet/lipgloss"

// ScreenStyle returns the bordered style wrapping a screen above the bar.
// The border takes the accent color when the screen belongs to the pressed
// or selected entry.
func (t *Theme) ScreenStyle(active bool) lipgloss.Style {
	border := Blend(t.Surface, t.OnSurface, 0.35)
	if active {
		border = t.Primary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
