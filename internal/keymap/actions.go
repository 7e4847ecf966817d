// Package keymap defines key bindings and action dispatch for the navigation bar.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionNone Action = ""

	// Navigation bar
	ActionPrev     Action = "prev"
	ActionNext     Action = "next"
	ActionSelect   Action = "select" // by position, see SelectIndex
	ActionFab      Action = "fab"
	ActionHelp     Action = "help"
	ActionQuit     Action = "quit"
	ActionFeedback Action = "toggle_feedback"
	ActionGlass    Action = "toggle_glass"
)
