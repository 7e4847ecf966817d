// Package highlight animates the navigation bar highlight between items.
//
// The highlight follows the pressed item while one is pressed and the
// selected item otherwise. Every move is an eased slide from the current
// interpolated position; starting a new slide supersedes the one in flight,
// whose remaining frames and arrival feedback are dropped. A feedback pulse
// is played only when a slide toward a newly selected item arrives.
package highlight

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/capsule/internal/config"
	"github.com/llehouerou/capsule/internal/feedback"
	"github.com/llehouerou/capsule/internal/ui/layout"
	"github.com/llehouerou/capsule/internal/ui/press"
)

// DefaultFrameRate is the number of frames per second used for slides.
const DefaultFrameRate = 60

// distances below this are treated as already arrived
const arrivalEpsilon = 1e-6

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Params are the geometry and timing of the highlight.
type Params struct {
	ItemWidth   float64
	ItemSpacing float64
	Duration    time.Duration
	Feedback    bool // pulse when a selection slide arrives
}

// ParamsFrom extracts the highlight parameters from a navigation config.
func ParamsFrom(cfg config.NavigationConfig) Params {
	return Params{
		ItemWidth:   float64(cfg.ItemWidth),
		ItemSpacing: float64(cfg.ItemSpacing),
		Duration:    cfg.AnimationDuration(),
		Feedback:    cfg.EnableHapticFeedback,
	}
}

// FrameMsg advances the slide of the animator it belongs to.
// Frames of a superseded slide are ignored.
type FrameMsg struct {
	ID   int
	tag  int
	Time time.Time
}

// TickFunc schedules fn after d. tea.Tick is the default.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Option configures an Animator.
type Option func(*Animator)

// WithClock sets the time source used to start slides.
func WithClock(now func() time.Time) Option {
	return func(a *Animator) {
		a.now = now
	}
}

// WithFrameRate sets the number of frames per second.
func WithFrameRate(fps int) Option {
	return func(a *Animator) {
		if fps > 0 {
			a.frameInterval = time.Second / time.Duration(fps)
		}
	}
}

// WithTick replaces the frame scheduler.
func WithTick(tick TickFunc) Option {
	return func(a *Animator) {
		a.tick = tick
	}
}

// WithEasing replaces the ease-in/ease-out curve.
func WithEasing(e Easing) Option {
	return func(a *Animator) {
		a.easing = e
	}
}

type slide struct {
	from, to float64
	start    time.Time
	duration time.Duration
	feedback bool
}

// Animator owns the highlight position of one navigation bar.
// It is driven from a single Bubble Tea update loop and is not safe for
// concurrent use.
type Animator struct {
	id  int
	tag int

	params        Params
	fb            feedback.Feedback
	now           func() time.Time
	tick          TickFunc
	easing        Easing
	frameInterval time.Duration

	offset   float64
	selected int
	pressed  int
	target   int  // item the highlight is heading to or resting on
	pending  bool // selection changed but not slid to yet
	active   *slide
}

// New creates an animator resting on item 0. fb may be nil.
func New(params Params, fb feedback.Feedback, opts ...Option) *Animator {
	if fb == nil {
		fb = feedback.None{}
	}
	a := &Animator{
		id:            nextID(),
		params:        params,
		fb:            fb,
		now:           time.Now,
		tick:          tea.Tick,
		easing:        EaseInOut,
		frameInterval: time.Second / DefaultFrameRate,
		pressed:       press.None,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Init(0)
	return a
}

// Init places the highlight on the selected item without animation or
// feedback and forgets any press. Call it when the bar mounts.
func (a *Animator) Init(selected int) {
	a.pressed = press.None
	a.Jump(selected)
}

// Jump records the selection and moves the highlight at once onto the pressed
// item, or the selected one when nothing is pressed. Any slide in flight and
// any held selection are dropped; no feedback is played.
func (a *Animator) Jump(selected int) {
	a.tag++
	a.active = nil
	a.pending = false
	a.selected = selected
	a.target = selected
	if a.pressed != press.None {
		a.target = a.pressed
	}
	a.offset = a.targetOffset(a.target)
}

// SetParams applies new geometry or timing. The highlight snaps to its
// current target; a pending arrival pulse is dropped.
func (a *Animator) SetParams(p Params) {
	a.params = p
	a.tag++
	a.active = nil
	a.offset = a.targetOffset(a.target)
}

// SetEasing replaces the curve used by the next slide.
func (a *Animator) SetEasing(e Easing) {
	if e != nil {
		a.easing = e
	}
}

// SetFeedback replaces the feedback played on arrival. nil disables it.
func (a *Animator) SetFeedback(fb feedback.Feedback) {
	if fb == nil {
		fb = feedback.None{}
	}
	a.fb = fb
}

// ID returns the identifier carried by this animator's frames.
func (a *Animator) ID() int {
	return a.id
}

// Offset returns the current highlight offset.
func (a *Animator) Offset() float64 {
	return a.offset
}

// Selected returns the last selected index supplied by the caller.
func (a *Animator) Selected() int {
	return a.selected
}

// Pressed returns the pressed index, or press.None.
func (a *Animator) Pressed() int {
	return a.pressed
}

// Target returns the item the highlight is heading to or resting on.
func (a *Animator) Target() int {
	return a.target
}

// Animating reports whether a slide is in flight.
func (a *Animator) Animating() bool {
	return a.active != nil
}

// SetSelected records the caller's selected index. A change slides the
// highlight to the new item and pulses feedback on arrival. While an item is
// pressed the change is held until release.
func (a *Animator) SetSelected(index int) tea.Cmd {
	if index == a.selected {
		return nil
	}
	a.selected = index
	if a.pressed != press.None {
		a.pending = true
		return nil
	}
	a.pending = false
	return a.slideTo(index, a.params.Feedback)
}

// SetPressStates receives the full press-state mapping from a press.Tracker.
func (a *Animator) SetPressStates(states map[int]bool) tea.Cmd {
	return a.SetPressed(press.Resolve(states))
}

// SetPressed moves the highlight to the pressed item, or back to the selected
// item on release. Presses never pulse feedback. A release only pulses when it
// completes a selection that the press held back or interrupted.
func (a *Animator) SetPressed(index int) tea.Cmd {
	if index < 0 {
		index = press.None
	}
	if index == a.pressed {
		return nil
	}
	a.pressed = index

	if index != press.None {
		if index == a.target {
			return nil
		}
		if a.active != nil && a.active.feedback {
			a.pending = true
		}
		return a.slideTo(index, false)
	}

	if a.pending {
		a.pending = false
		return a.slideTo(a.selected, a.params.Feedback)
	}
	if a.target == a.selected {
		return nil
	}
	return a.slideTo(a.selected, false)
}

// Update advances the slide on frame messages that belong to it.
func (a *Animator) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != a.id || frame.tag != a.tag || a.active == nil {
		return nil
	}

	s := a.active
	if frame.Time.Sub(s.start) >= s.duration {
		return a.arrive()
	}
	a.offset = a.at(s, frame.Time)
	return a.nextFrame()
}

func (a *Animator) slideTo(index int, withFeedback bool) tea.Cmd {
	now := a.now()
	from := a.offset
	if a.active != nil {
		from = a.at(a.active, now)
	}

	a.tag++
	a.target = index
	a.offset = from
	a.active = &slide{
		from:     from,
		to:       a.targetOffset(index),
		start:    now,
		duration: a.params.Duration,
		feedback: withFeedback,
	}

	if a.params.Duration <= 0 || math.Abs(a.active.to-from) < arrivalEpsilon {
		return a.arrive()
	}
	return a.nextFrame()
}

func (a *Animator) arrive() tea.Cmd {
	s := a.active
	a.active = nil
	a.offset = s.to
	if s.feedback {
		return feedback.Cmd(a.fb)
	}
	return nil
}

func (a *Animator) at(s *slide, now time.Time) float64 {
	if s.duration <= 0 {
		return s.to
	}
	p := float64(now.Sub(s.start)) / float64(s.duration)
	p = min(max(p, 0), 1)
	return s.from + (s.to-s.from)*a.easing(p)
}

func (a *Animator) nextFrame() tea.Cmd {
	id, tag := a.id, a.tag
	return a.tick(a.frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, tag: tag, Time: t}
	})
}

func (a *Animator) targetOffset(index int) float64 {
	return layout.TargetOffset(index, a.params.ItemWidth, a.params.ItemSpacing)
}
