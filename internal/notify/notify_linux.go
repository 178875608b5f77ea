//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const expireMillis = 5000

// desktopNotify posts to the freedesktop notification service on the session bus.
func desktopNotify(title, body, icon string) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		appName, uint32(0), icon, title, body, []string{}, map[string]dbus.Variant{}, int32(expireMillis))
	return call.Err
}
