//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package display

import "errors"

func detect() (float64, error) {
	return 0, errors.New("scale detection not supported on this platform")
}
