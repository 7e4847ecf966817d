//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	busName      = "org.freedesktop.Notifications"
	busPath      = dbus.ObjectPath("/org/freedesktop/Notifications")
	methodNotify = busName + ".Notify"
	methodClose  = busName + ".CloseNotification"

	desktopEntry = "capsule"
	defaultIcon  = "input-tablet"
)

type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without one, notifications are disabled
// and no error is reported.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Disabled{}, nil //nolint:nilerr // notifications are optional
	}
	return &dbusNotifier{obj: conn.Object(busName, busPath)}, nil
}

func hints(n Notification) map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
		"transient":     dbus.MakeVariant(n.Urgency != UrgencyCritical),
	}
}

// Notify calls org.freedesktop.Notifications.Notify and returns the id the
// server assigned.
func (d *dbusNotifier) Notify(n Notification) (uint32, error) {
	icon := n.Icon
	if icon == "" {
		icon = defaultIcon
	}

	var id uint32
	err := d.obj.Call(methodNotify, 0,
		appName, n.ReplacesID, icon, n.Title, n.Body,
		[]string{}, hints(n), n.Timeout,
	).Store(&id)
	if err != nil {
		return 0, fmt.Errorf("notify %q: %w", n.Title, err)
	}
	return id, nil
}

func (d *dbusNotifier) Close(id uint32) error {
	if err := d.obj.Call(methodClose, 0, id).Err; err != nil {
		return fmt.Errorf("close notification %d: %w", id, err)
	}
	return nil
}
