//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	busName      = "org.freedesktop.Notifications"
	busPath      = dbus.ObjectPath("/org/freedesktop/Notifications")
	methodNotify = busName + ".Notify"
	methodClose  = busName + ".CloseNotification"

	appName      = "Fader"
	desktopEntry = "fader"
)

type busNotifier struct {
	obj dbus.BusObject
}

// New connects to the notification service on the session bus. Without a
// session bus it returns a notifier that drops everything.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return discard{}, nil //nolint:nilerr // no desktop session is not an error
	}
	return &busNotifier{obj: conn.Object(busName, busPath)}, nil
}

// Notify calls Notify(app_name, replaces_id, app_icon, summary, body,
// actions, hints, expire_timeout) and returns the notification id.
func (n *busNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
	}
	var id uint32
	err := n.obj.Call(methodNotify, 0,
		appName, notif.ReplacesID, notif.Icon, notif.Title, notif.Body,
		[]string{}, hints, notif.Timeout,
	).Store(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (n *busNotifier) Close(id uint32) error {
	return n.obj.Call(methodClose, 0, id).Err
}
