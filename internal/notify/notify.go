// Package notify sends desktop notifications for actions triggered from the
// navigation bar.
package notify

import (
	"log"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/capsule/internal/errmsg"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const appName = "Capsule"

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Announcer keeps a single notification on screen: each announcement
// replaces the previous one.
type Announcer struct {
	notifier Notifier
	timeout  int32

	mu   sync.Mutex
	last uint32
}

// NewAnnouncer wraps n. timeout is in milliseconds.
func NewAnnouncer(n Notifier, timeout int32) *Announcer {
	return &Announcer{notifier: n, timeout: timeout}
}

// Announce shows title and body, replacing the last announcement.
func (a *Announcer) Announce(title, body string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.notifier.Notify(Notification{
		Title:      title,
		Body:       body,
		Timeout:    a.timeout,
		ReplacesID: a.last,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		return err
	}
	a.last = id
	return nil
}

// Cmd announces in the background. Failures are logged; the command
// produces no message.
func (a *Announcer) Cmd(title, body string) tea.Cmd {
	return func() tea.Msg {
		if err := a.Announce(title, body); err != nil {
			log.Print(errmsg.FormatWith(errmsg.OpNotify, title, err))
		}
		return nil
	}
}
