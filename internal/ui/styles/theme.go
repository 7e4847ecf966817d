package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette the navigation bar falls back to when the
// configuration leaves a color unset.
type Theme struct {
	// Surfaces
	Surface  lipgloss.Color // Capsule background
	Backdrop lipgloss.Color // What the glass effect lets through

	// Accent
	Primary   lipgloss.Color // Selected item, highlight, FAB container
	OnPrimary lipgloss.Color // FAB icon

	// Content
	OnSurface lipgloss.Color // Unselected items (used at reduced alpha)

	// Badges
	Error          lipgloss.Color
	ErrorContainer lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for text around the bar.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Title  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
}

// UnselectedAlpha is the opacity applied to OnSurface for unselected items.
const UnselectedAlpha = 0.7

var defaultTheme = Theme{
	Surface:  lipgloss.Color("#1f1b24"),
	Backdrop: lipgloss.Color("#121212"),

	Primary:   lipgloss.Color("#a78bfa"),
	OnPrimary: lipgloss.Color("#1a1033"),

	OnSurface: lipgloss.Color("#e6e1e5"),

	Error:          lipgloss.Color("#ff5555"),
	ErrorContainer: lipgloss.Color("#ffdad6"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.OnSurface)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(Blend(t.Surface, t.OnSurface, 0.5)),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(t.Error),
	}
}
