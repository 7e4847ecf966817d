package testutil

import tea "github.com/charmbracelet/bubbletea"

// Model is a Bubble Tea component whose Update returns its own concrete type.
type Model[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
}

// Harness drives a component in tests, keeping the commands it returns so
// they can be run explicitly.
type Harness[M Model[M]] struct {
	model   M
	pending []tea.Cmd
}

// NewHarness wraps a component.
func NewHarness[M Model[M]](m M) *Harness[M] {
	return &Harness[M]{model: m}
}

// Model returns the current component value.
func (h *Harness[M]) Model() M {
	return h.model
}

// Set replaces the component, e.g. after calling a mutating method on a copy.
func (h *Harness[M]) Set(m M) {
	h.model = m
}

// Send delivers msg to the component and keeps the returned command.
func (h *Harness[M]) Send(msg tea.Msg) {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	h.Keep(cmd)
}

// Keep queues a command returned outside of Send.
func (h *Harness[M]) Keep(cmd tea.Cmd) {
	if cmd != nil {
		h.pending = append(h.pending, cmd)
	}
}

// View returns the component's rendered content.
func (h *Harness[M]) View() string {
	return h.model.View()
}

// Drain runs every queued command once and returns the non-nil messages they
// produced, flattening batches. Messages are not fed back to the component.
func (h *Harness[M]) Drain() []tea.Msg {
	cmds := h.pending
	h.pending = nil
	return RunCmds(cmds...)
}

// RunCmds executes commands and collects their messages, flattening batches.
func RunCmds(cmds ...tea.Cmd) []tea.Msg {
	var msgs []tea.Msg
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		msg := cmd()
		switch m := msg.(type) {
		case nil:
		case tea.BatchMsg:
			msgs = append(msgs, RunCmds(m...)...)
		default:
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
