//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"fmt"
	"image"
)

// WriteImage is unsupported on this platform.
func WriteImage(image.Image) error {
	return fmt.Errorf("copying images is not supported on this platform")
}
