package theme

import (
	"image/color"
)

// Theme is the palette for everything around the ink layer.
type Theme struct {
	Name string

	Backdrop     color.RGBA // behind the ink layer
	GuideDefault color.RGBA // guides configured without a colour
	Status       color.RGBA // status strip background
	StatusText   color.RGBA
}

// Default returns the built in light theme.
func Default() *Theme {
	return &Theme{
		Name:         "Default",
		Backdrop:     color.RGBA{0xaa, 0xaa, 0xaa, 255},
		GuideDefault: color.RGBA{0xff, 0x00, 0xff, 255},
		Status:       color.RGBA{0x22, 0x22, 0x22, 0xc0},
		StatusText:   color.RGBA{0xee, 0xee, 0xee, 255},
	}
}
