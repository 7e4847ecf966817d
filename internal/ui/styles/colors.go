// Package styles resolves the navigation bar colors against a theme.
package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/llehouerou/capsule/internal/config"
)

// Unspecified marks a color left unset by the caller.
const Unspecified = config.Unspecified

// HighlightAlpha is the opacity of the selected color used for the highlight.
const HighlightAlpha = 0.3

// Colors is the resolved color set of one navigation bar.
// No field is ever Unspecified.
type Colors struct {
	Background lipgloss.Color
	Selected   lipgloss.Color
	Unselected lipgloss.Color
}

// Resolve merges the configured colors with the theme defaults.
func Resolve(cfg config.NavigationConfig, theme *Theme) Colors {
	if theme == nil {
		theme = T()
	}
	return Colors{
		Background: orDefault(cfg.BackgroundColor, theme.Surface),
		Selected:   orDefault(cfg.SelectedItemColor, theme.Primary),
		Unselected: orDefault(cfg.UnselectedItemColor,
			Blend(theme.Surface, theme.OnSurface, UnselectedAlpha)),
	}
}

// FabColors is the resolved color pair of the floating action button.
type FabColors struct {
	Container lipgloss.Color
	Icon      lipgloss.Color
}

// ResolveFab picks the FAB colors: the action's own colors first, then the
// configured FAB colors, then the theme.
func ResolveFab(container, icon lipgloss.Color, cfg config.NavigationConfig, theme *Theme) FabColors {
	if theme == nil {
		theme = T()
	}
	return FabColors{
		Container: orDefault(container, orDefault(cfg.FabContainerColor, theme.Primary)),
		Icon:      orDefault(icon, orDefault(cfg.FabIconColor, theme.OnPrimary)),
	}
}

func orDefault(c, fallback lipgloss.Color) lipgloss.Color {
	if c == Unspecified {
		return fallback
	}
	return c
}

// Blend composites over on top of under with the given opacity and returns
// the resulting opaque color. alpha is clamped to [0,1].
// Blending is done in RGB, matching how translucent layers composite.
// When either color cannot be read, over is returned unchanged.
func Blend(under, over lipgloss.Color, alpha float64) lipgloss.Color {
	alpha = min(max(alpha, 0), 1)
	top, ok := parseColor(over)
	if !ok {
		return over
	}
	bottom, ok := parseColor(under)
	if !ok {
		return over
	}
	return lipgloss.Color(bottom.BlendRgb(top, alpha).Clamped().Hex())
}

// parseColor reads "#rgb", "#rrggbb" and ANSI indexes 0-255.
func parseColor(c lipgloss.Color) (colorful.Color, bool) {
	s := string(c)
	if strings.HasPrefix(s, "#") {
		col, err := colorful.Hex(s)
		return col, err == nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return colorful.Color{}, false
	}
	return termenv.ConvertToRGB(termenv.ANSI256Color(n)), true
}
