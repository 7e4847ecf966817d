// Package press derives a single pressed index from per-item press states.
package press

import (
	"maps"
	"slices"
)

// None is the pressed index reported when no item is pressed.
const None = -1

// Listener receives the full index→pressed mapping after every transition.
// The map is a copy and may be retained.
type Listener func(states map[int]bool)

// Tracker records the press state of each item of one navigation bar.
// It does not drive geometry or animation itself; it only notifies.
type Tracker struct {
	states   map[int]bool
	listener Listener
}

// NewTracker creates an empty tracker. listener may be nil.
func NewTracker(listener Listener) *Tracker {
	return &Tracker{
		states:   make(map[int]bool),
		listener: listener,
	}
}

// SetListener replaces the change listener.
func (t *Tracker) SetListener(l Listener) {
	t.listener = l
}

// Set records the press state of the item at index. The listener is only
// notified when the state actually changes.
func (t *Tracker) Set(index int, pressed bool) {
	if index < 0 || t.states[index] == pressed {
		return
	}
	if pressed {
		t.states[index] = true
	} else {
		delete(t.states, index)
	}
	t.notify()
}

// IsPressed reports whether the item at index is currently pressed.
func (t *Tracker) IsPressed(index int) bool {
	return t.states[index]
}

// PressedIndex returns the lowest pressed index, or None.
func (t *Tracker) PressedIndex() int {
	return Resolve(t.states)
}

// States returns a copy of the current mapping.
func (t *Tracker) States() map[int]bool {
	return maps.Clone(t.states)
}

// ReleaseAll releases every pressed item with a single notification.
func (t *Tracker) ReleaseAll() {
	if len(t.states) == 0 {
		return
	}
	clear(t.states)
	t.notify()
}

// Reset drops all press state, e.g. after the item list changed.
func (t *Tracker) Reset() {
	t.ReleaseAll()
}

func (t *Tracker) notify() {
	if t.listener != nil {
		t.listener(maps.Clone(t.states))
	}
}

// Resolve picks the single pressed index out of a press-state mapping: the
// lowest index whose state is true, or None when nothing is pressed.
// Simultaneous presses are not arbitrated beyond that.
func Resolve(states map[int]bool) int {
	for _, idx := range slices.Sorted(maps.Keys(states)) {
		if states[idx] {
			return idx
		}
	}
	return None
}
