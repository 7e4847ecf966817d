package navbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/capsule/internal/ui/layout"
	"github.com/llehouerou/capsule/internal/ui/press"
	"github.com/llehouerou/capsule/internal/ui/render"
	"github.com/llehouerou/capsule/internal/ui/styles"
)

const (
	fabWidth      = 5 // FAB interior columns
	fabGap        = 2 // columns between capsule and FAB
	maxBadgeWidth = 3
	glassVeil     = 0.1 // opacity of the surface veil over the highlight
)

// layer is one pass of the capsule composition.
type layer int

const (
	layerBase layer = iota
	layerItems
	layerHighlight
	layerOverlay
)

// layerOrder returns the passes from bottom to top. With the glass effect
// the highlight sits between the items and a veiled copy of them.
func layerOrder(glass bool) []layer {
	if glass {
		return []layer{layerBase, layerItems, layerHighlight, layerOverlay}
	}
	return []layer{layerBase, layerHighlight, layerItems}
}

// View renders the bar, its FAB and the surrounding padding. When a size was
// set the bar is centered horizontally.
func (m Model) View() string {
	rows := layout.ContentRows(m.cfg.Height)
	c := m.compose()

	capsule := m.capsuleStyle().Render(strings.Join(c.lines(), "\n"))
	bar := m.mark(m.barZone(), capsule)
	if fab := m.Fab(); fab != nil {
		bar = lipgloss.JoinHorizontal(lipgloss.Top,
			bar,
			strings.Repeat(" ", fabGap),
			m.mark(m.fabZone(), m.viewFab(fab, rows)),
		)
	}

	bar = lipgloss.NewStyle().
		Padding(m.cfg.VerticalPadding, m.cfg.HorizontalPadding).
		Render(bar)
	if w := m.Width(); w > 0 {
		bar = lipgloss.PlaceHorizontal(w, lipgloss.Center, bar)
	}
	return bar
}

// ViewHeight returns the number of lines View produces.
func (m Model) ViewHeight() int {
	return m.cfg.Height + 2*m.cfg.VerticalPadding
}

// compose paints the capsule interior.
func (m Model) compose() *canvas {
	width := layout.ContentWidth(len(m.items), m.cfg.ItemWidth, m.cfg.ItemSpacing)
	c := newCanvas(width, layout.ContentRows(m.cfg.Height), "")
	for _, l := range layerOrder(m.cfg.EnableGlassEffect) {
		m.paint(c, l)
	}
	return c
}

func (m Model) paint(c *canvas, l layer) {
	switch l {
	case layerBase:
		surface := m.surface()
		c.tint(0, c.width, func(lipgloss.Color) lipgloss.Color { return surface })
	case layerHighlight:
		if !m.highlightVisible() {
			return
		}
		start, end := layout.CellSpan(m.s.anim.Offset(), m.cfg.ItemWidth, c.width)
		c.tint(start, end, func(bg lipgloss.Color) lipgloss.Color {
			return styles.Blend(bg, m.colors.Selected, styles.HighlightAlpha)
		})
	case layerItems:
		m.paintItems(c)
	case layerOverlay:
		c.tint(0, c.width, func(bg lipgloss.Color) lipgloss.Color {
			return styles.Blend(bg, m.colors.Background, glassVeil)
		})
		m.paintItems(c)
	}
}

// surface is the capsule fill: the background color, or with the glass
// effect, the background laid over the backdrop at the configured alpha.
func (m Model) surface() lipgloss.Color {
	if m.cfg.EnableGlassEffect {
		return styles.Blend(m.theme.Backdrop, m.colors.Background, m.cfg.GlassEffectAlpha)
	}
	return m.colors.Background
}

// highlightVisible reports whether the highlight is drawn. It is hidden when
// the selection is outside the items and nothing is pressed.
func (m Model) highlightVisible() bool {
	return m.validIndex(m.selected) || m.s.anim.Pressed() != press.None
}

func (m Model) paintItems(c *canvas) {
	rows := len(c.rows)
	w := m.cfg.ItemWidth
	for i, item := range m.items {
		x := int(layout.TargetOffset(i, float64(w), float64(m.cfg.ItemSpacing)))
		fg, bold := m.colors.Unselected, false
		if i == m.selected {
			fg, bold = m.colors.Selected, true
		}
		icon := render.Sanitize(item.Icon)
		title := render.Sanitize(item.Title)

		if rows == 1 {
			label := strings.TrimSpace(icon + " " + title)
			c.text(0, x, render.Center(label, w), fg, bold)
			continue
		}
		top := (rows - 2) / 2
		m.paintIcon(c, top, x, icon, item.Badge, fg)
		c.text(top+1, x, render.Center(title, w), fg, bold)
	}
}

// paintIcon centers the icon, followed by its badge, in the item at column x.
func (m Model) paintIcon(c *canvas, y, x int, icon, badge string, fg lipgloss.Color) {
	badge = render.Truncate(badge, maxBadgeWidth)
	groupWidth := runewidth.StringWidth(icon)
	if badge != "" {
		badge = " " + badge + " "
		groupWidth += runewidth.StringWidth(badge)
	}
	start := x + layout.CenterLeft(m.cfg.ItemWidth, groupWidth)
	next := c.text(y, start, icon, fg, false)
	if badge == "" {
		return
	}
	end := c.text(y, next, badge, m.theme.ErrorContainer, true)
	c.setBg(y, next, end, m.theme.Error)
}

func (m Model) capsuleStyle() lipgloss.Style {
	border := lipgloss.NormalBorder()
	if m.cfg.CornerRadius > 0 {
		border = lipgloss.RoundedBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(m.surface())
}

func (m Model) viewFab(fab *FabAction, rows int) string {
	colors := styles.ResolveFab(fab.ContainerColor, fab.IconColor, m.cfg, m.theme)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colors.Container).
		Background(colors.Container).
		Foreground(colors.Icon).
		Bold(true).
		Width(fabWidth).
		Height(rows).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(render.Truncate(fab.Icon, fabWidth))
}

func (m Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}
