package keymap

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the bindings of the navigation bar and its host.
// It satisfies help.KeyMap.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Select   key.Binding
	Fab      key.Binding
	Feedback key.Binding
	Glass    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// Default returns the default bindings.
func Default() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
		Fab: key.NewBinding(
			key.WithKeys("f", "+"),
			key.WithHelp("f", "action"),
		),
		Feedback: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "feedback on/off"),
		),
		Glass: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "glass on/off"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the compact help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Fab, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped in columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Select},
		{k.Fab, k.Feedback, k.Glass},
		{k.Help, k.Quit},
	}
}

// Resolve maps a key press to an action, or ActionNone if not bound.
// Bindings are checked in a fixed order so overlapping keys resolve
// deterministically.
func (k KeyMap) Resolve(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Prev):
		return ActionPrev
	case key.Matches(msg, k.Next):
		return ActionNext
	case key.Matches(msg, k.Select):
		return ActionSelect
	case key.Matches(msg, k.Fab):
		return ActionFab
	case key.Matches(msg, k.Feedback):
		return ActionFeedback
	case key.Matches(msg, k.Glass):
		return ActionGlass
	case key.Matches(msg, k.Help):
		return ActionHelp
	}
	return ActionNone
}

// SelectIndex returns the zero-based item position of a digit key.
func SelectIndex(msg tea.KeyMsg) (int, bool) {
	n, err := strconv.Atoi(msg.String())
	if err != nil || n < 1 || n > 9 {
		return 0, false
	}
	return n - 1, true
}
