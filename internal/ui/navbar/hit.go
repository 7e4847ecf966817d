package navbar

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Hitter locates mouse events inside marked zones.
type Hitter interface {
	// Pos returns the event position relative to the zone's top-left cell.
	// ok is false when the event is outside the zone or the zone is unknown.
	Pos(id string, msg tea.MouseMsg) (x, y int, ok bool)
}

type zoneHitter struct {
	zones *zone.Manager
}

func (h zoneHitter) Pos(id string, msg tea.MouseMsg) (x, y int, ok bool) {
	info := h.zones.Get(id)
	if info == nil || info.IsZero() || !info.InBounds(msg) {
		return 0, 0, false
	}
	return msg.X - info.StartX, msg.Y - info.StartY, true
}
