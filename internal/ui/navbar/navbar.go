// Package navbar provides the floating bottom navigation bar component.
//
// The bar shows a capsule of items with a highlight that slides to the
// selected item, or to the item under the pointer while it is pressed, and an
// optional floating action button to its right. Selection is owned by the
// host: activating an item only emits an ItemSelected action, and the host
// answers with SetSelected.
package navbar

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/capsule/internal/config"
	"github.com/llehouerou/capsule/internal/feedback"
	"github.com/llehouerou/capsule/internal/keymap"
	"github.com/llehouerou/capsule/internal/ui"
	"github.com/llehouerou/capsule/internal/ui/highlight"
	"github.com/llehouerou/capsule/internal/ui/layout"
	"github.com/llehouerou/capsule/internal/ui/press"
	"github.com/llehouerou/capsule/internal/ui/styles"
)

// Option configures a Model.
type Option func(*Model)

// WithSelected sets the item the highlight rests on when the bar mounts.
func WithSelected(index int) Option {
	return func(m *Model) {
		m.selected = index
	}
}

// WithFeedback sets the feedback played when a selection slide arrives and
// when the FAB is clicked.
func WithFeedback(fb feedback.Feedback) Option {
	return func(m *Model) {
		m.fb = fb
	}
}

// WithFab sets a bar-level FAB that takes precedence over item FABs.
func WithFab(fab *FabAction) Option {
	return func(m *Model) {
		m.fab = fab
	}
}

// WithTheme sets the palette used for unset colors.
func WithTheme(t *styles.Theme) Option {
	return func(m *Model) {
		m.theme = t
	}
}

// WithZoneManager enables mouse support. The host must scan its full view
// with the same manager.
func WithZoneManager(zones *zone.Manager) Option {
	return func(m *Model) {
		m.zones = zones
		m.hitter = zoneHitter{zones: zones}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km keymap.KeyMap) Option {
	return func(m *Model) {
		m.keys = km
	}
}

// WithOnItemSelected registers a callback run when an item is activated,
// before the ItemSelected action is delivered.
func WithOnItemSelected(fn func(index int)) Option {
	return func(m *Model) {
		m.onItemSelected = fn
	}
}

// WithClock sets the time source of the highlight animation.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.animOpts = append(m.animOpts, highlight.WithClock(now))
	}
}

// WithAnimatorOptions passes options through to the highlight animator.
func WithAnimatorOptions(opts ...highlight.Option) Option {
	return func(m *Model) {
		m.animOpts = append(m.animOpts, opts...)
	}
}

// session is the mutable state shared by copies of a Model.
type session struct {
	tracker *press.Tracker
	anim    *highlight.Animator
	cmds    []tea.Cmd // produced by tracker notifications, flushed by Update
}

// Model is the navigation bar component.
type Model struct {
	ui.Base

	items    []Item
	selected int
	cfg      config.NavigationConfig
	colors   styles.Colors
	theme    *styles.Theme
	fab      *FabAction
	fb       feedback.Feedback
	keys     keymap.KeyMap

	zones  *zone.Manager
	hitter Hitter
	prefix string

	onItemSelected func(int)
	animOpts       []highlight.Option

	s *session

	pressedItem int // item under a held left button, press.None otherwise
	fabPressed  bool
}

// New creates a navigation bar. cfg is normalized before use.
func New(items []Item, cfg config.NavigationConfig, opts ...Option) Model {
	m := Model{
		items:       items,
		theme:       styles.T(),
		fb:          feedback.None{},
		keys:        keymap.Default(),
		pressedItem: press.None,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.fb == nil {
		m.fb = feedback.None{}
	}
	if m.theme == nil {
		m.theme = styles.T()
	}
	m.applyConfig(cfg)

	s := &session{}
	animOpts := append([]highlight.Option{highlight.WithEasing(highlight.Named(m.cfg.Easing))}, m.animOpts...)
	s.anim = highlight.New(highlight.ParamsFrom(m.cfg), m.fb, animOpts...)
	s.tracker = press.NewTracker(func(states map[int]bool) {
		s.cmds = append(s.cmds, s.anim.SetPressStates(states))
	})
	m.s = s
	m.prefix = fmt.Sprintf("navbar%d-", s.anim.ID())

	if m.validIndex(m.selected) {
		s.anim.Init(m.selected)
	}
	return m
}

func (m *Model) applyConfig(cfg config.NavigationConfig) {
	m.cfg = cfg.Normalize()
	m.colors = styles.Resolve(m.cfg, m.theme)
}

// Init implements tea.Model. The highlight starts at rest.
func (m Model) Init() tea.Cmd {
	return nil
}

// Items returns the items shown in the bar.
func (m Model) Items() []Item {
	return m.items
}

// Selected returns the selected index as last set by the host.
func (m Model) Selected() int {
	return m.selected
}

// Config returns the normalized configuration in use.
func (m Model) Config() config.NavigationConfig {
	return m.cfg
}

// Colors returns the resolved colors of the bar.
func (m Model) Colors() styles.Colors {
	return m.colors
}

// Pressed returns the index of the pressed item, or press.None.
func (m Model) Pressed() int {
	return m.s.tracker.PressedIndex()
}

// Offset returns the current highlight offset from the inner left edge.
func (m Model) Offset() float64 {
	return m.s.anim.Offset()
}

// Animating reports whether the highlight is moving.
func (m Model) Animating() bool {
	return m.s.anim.Animating()
}

// Fab returns the FAB currently shown: the bar-level FAB, else the selected
// item's FAB, else nil.
func (m Model) Fab() *FabAction {
	if m.fab != nil {
		return m.fab
	}
	if m.validIndex(m.selected) {
		return m.items[m.selected].Fab
	}
	return nil
}

// SetSelected records the host's selection. The highlight slides to the new
// item and pulses feedback on arrival. An index outside the items hides the
// highlight; coming back into range snaps it into place.
func (m *Model) SetSelected(index int) tea.Cmd {
	if index == m.selected {
		return nil
	}
	wasValid := m.validIndex(m.selected)
	m.selected = index
	if !m.validIndex(index) {
		return nil
	}
	if !wasValid && m.s.anim.Pressed() == press.None {
		m.s.anim.Jump(index)
		return nil
	}
	return m.s.anim.SetSelected(index)
}

// SetItems replaces the items. Press states refer to positions and are
// cleared.
func (m *Model) SetItems(items []Item) tea.Cmd {
	wasValid := m.validIndex(m.selected)
	m.items = items
	m.pressedItem = press.None
	m.fabPressed = false
	m.s.tracker.Reset()
	cmd := m.flush()
	if !wasValid && m.validIndex(m.selected) && m.s.anim.Pressed() == press.None {
		m.s.anim.Jump(m.selected)
	}
	return cmd
}

// SetConfig applies a new configuration. The highlight snaps to its target.
func (m *Model) SetConfig(cfg config.NavigationConfig) {
	m.applyConfig(cfg)
	m.s.anim.SetParams(highlight.ParamsFrom(m.cfg))
	m.s.anim.SetEasing(highlight.Named(m.cfg.Easing))
}

// SetFeedback replaces the feedback capability.
func (m *Model) SetFeedback(fb feedback.Feedback) {
	if fb == nil {
		fb = feedback.None{}
	}
	m.fb = fb
	m.s.anim.SetFeedback(fb)
}

// Update handles frame, mouse and key messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case highlight.FrameMsg:
		return m, m.s.anim.Update(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := len(m.items)
	switch m.keys.Resolve(msg) {
	case keymap.ActionPrev:
		if n == 0 {
			return nil
		}
		if !m.validIndex(m.selected) {
			return m.activate(n - 1)
		}
		return m.activate((m.selected - 1 + n) % n)
	case keymap.ActionNext:
		if n == 0 {
			return nil
		}
		if !m.validIndex(m.selected) {
			return m.activate(0)
		}
		return m.activate((m.selected + 1) % n)
	case keymap.ActionSelect:
		if idx, ok := keymap.SelectIndex(msg); ok && idx < n {
			return m.activate(idx)
		}
	case keymap.ActionFab:
		return m.activateFab()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.hitter == nil {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if idx := m.itemAt(msg); idx != press.None {
			m.pressedItem = idx
			m.s.tracker.Set(idx, true)
			return m.flush()
		}
		if m.fabAt(msg) {
			m.fabPressed = true
		}

	case tea.MouseActionMotion:
		if m.pressedItem != press.None && m.itemAt(msg) != m.pressedItem {
			m.pressedItem = press.None
			m.s.tracker.ReleaseAll()
			return m.flush()
		}
		if m.fabPressed && !m.fabAt(msg) {
			m.fabPressed = false
		}

	case tea.MouseActionRelease:
		var cmds []tea.Cmd
		if idx := m.pressedItem; idx != press.None {
			m.pressedItem = press.None
			clicked := m.itemAt(msg) == idx
			m.s.tracker.ReleaseAll()
			cmds = append(cmds, m.flush())
			if clicked {
				cmds = append(cmds, m.activate(idx))
			}
		}
		if m.fabPressed {
			m.fabPressed = false
			if m.fabAt(msg) {
				cmds = append(cmds, m.activateFab())
			}
		}
		return tea.Batch(cmds...)
	}
	return nil
}

// itemAt returns the item under the event, or press.None.
func (m Model) itemAt(msg tea.MouseMsg) int {
	x, y, ok := m.hitter.Pos(m.barZone(), msg)
	if !ok {
		return press.None
	}
	rows := layout.ContentRows(m.cfg.Height)
	if y < layout.BorderSize || y >= layout.BorderSize+rows {
		return press.None
	}
	idx := layout.ItemAt(x-layout.BorderSize, len(m.items), m.cfg.ItemWidth, m.cfg.ItemSpacing)
	if idx < 0 {
		return press.None
	}
	return idx
}

func (m Model) fabAt(msg tea.MouseMsg) bool {
	if m.Fab() == nil {
		return false
	}
	_, _, ok := m.hitter.Pos(m.fabZone(), msg)
	return ok
}

// activate requests the selection of an item.
func (m *Model) activate(index int) tea.Cmd {
	item := m.items[index]
	log.Printf("navbar: item %d (%s) activated", index, item.Route)
	if m.onItemSelected != nil {
		m.onItemSelected(index)
	}
	return func() tea.Msg {
		return ActionMsg(ItemSelected{Index: index, Route: item.Route})
	}
}

func (m *Model) activateFab() tea.Cmd {
	fab := m.Fab()
	if fab == nil {
		return nil
	}
	log.Printf("navbar: fab %q activated", fab.Label)
	label := fab.Label
	cmds := []tea.Cmd{fab.OnClick}
	if m.cfg.EnableHapticFeedback {
		cmds = append(cmds, feedback.Cmd(m.fb))
	}
	cmds = append(cmds, func() tea.Msg {
		return ActionMsg(FabClicked{Label: label})
	})
	return tea.Batch(cmds...)
}

// flush returns the commands queued by tracker notifications.
func (m *Model) flush() tea.Cmd {
	cmds := m.s.cmds
	m.s.cmds = nil
	return tea.Batch(cmds...)
}

func (m Model) validIndex(i int) bool {
	return i >= 0 && i < len(m.items)
}

func (m Model) barZone() string {
	return m.prefix + "bar"
}

func (m Model) fabZone() string {
	return m.prefix + "fab"
}
