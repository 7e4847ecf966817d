// Package action defines how components report user intents to their host.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an intent reported by a component.
// The ActionType method returns a string identifier for logging.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that produced it.
type Msg struct {
	Source string // e.g. "navbar"
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}
