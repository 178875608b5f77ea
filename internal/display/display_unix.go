//go:build linux || freebsd || openbsd || netbsd || dragonfly

package display

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// detect asks the X server for Xft.dpi and falls back to the physical size
// of the default screen.
func detect() (float64, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return 0, fmt.Errorf("connect X server: %w", err)
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	if screen == nil {
		return 0, fmt.Errorf("xproto screen unavailable")
	}
	reply, err := xproto.GetProperty(conn, false, screen.Root, xproto.AtomResourceManager,
		xproto.AtomString, 0, 1<<16).Reply()
	if err == nil && reply != nil {
		if dpi, ok := xftDPI(string(reply.Value)); ok {
			return fromDPI(dpi), nil
		}
	}
	if dpi, ok := physicalDPI(screen.WidthInPixels, screen.WidthInMillimeters); ok {
		return fromDPI(dpi), nil
	}
	return 0, fmt.Errorf("screen reports no physical size")
}
