package navbar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one destination shown in the bar. Items are identified by position.
type Item struct {
	Title string
	Icon  string
	Route string
	Badge string     // empty means no badge
	Fab   *FabAction // shown while this item is selected, unless the bar has its own
}

// FabAction describes the floating action button.
// Unset colors fall back to the configured FAB colors, then to the theme.
type FabAction struct {
	Icon           string
	Label          string
	ContainerColor lipgloss.Color
	IconColor      lipgloss.Color
	OnClick        tea.Cmd
}

// Entry pairs a screen with the item that leads to it.
type Entry struct {
	Key    string
	Title  string
	Icon   string
	Badge  string
	Screen func(width, height int) string
	Fab    *FabAction
}

// Item returns the bar item of the entry. The entry key is used as route.
func (e Entry) Item() Item {
	return Item{
		Title: e.Title,
		Icon:  e.Icon,
		Route: e.Key,
		Badge: e.Badge,
		Fab:   e.Fab,
	}
}

// Items converts entries to bar items, keeping their order.
func Items(entries []Entry) []Item {
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = e.Item()
	}
	return items
}
