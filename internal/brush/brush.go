// Package brush holds the pressure model and the stamp sprite used to build
// strokes out of repeated soft round dabs.
package brush

import (
	"image"
	"image/color"
	"math"
)

// DefaultSize is the base brush diameter before device scaling.
const DefaultSize = 7

// ClampPressure maps a raw pressure reading into [0, 1]. NaN and negative
// readings become 0.
func ClampPressure(p float64) float64 {
	if math.IsNaN(p) || p <= 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Width returns the stamp diameter for pressure p. Width grows with the
// square root of pressure so light touches still leave a visible mark.
func Width(p, baseSize, scale float64) float64 {
	return baseSize * scale * math.Sqrt(ClampPressure(p))
}

// Opacity returns the per-stamp alpha for pressure p.
func Opacity(p float64) float64 {
	return ClampPressure(p)
}

// SpriteDiameter returns the sprite size in device pixels for the given base
// size and scale. It never returns less than 1.
func SpriteDiameter(baseSize, scale float64) int {
	d := int(math.Round(baseSize * scale))
	if d < 1 {
		d = 1
	}
	return d
}

// NewSprite renders the round stamp used for every dab: fully covered out to
// a quarter of the diameter, fading linearly to nothing at the edge.
func NewSprite(d int) *image.Alpha {
	if d < 1 {
		d = 1
	}
	img := image.NewAlpha(image.Rect(0, 0, d, d))
	c := float64(d) / 2
	inner := float64(d) / 4
	outer := float64(d) / 2
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			r := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			img.SetAlpha(x, y, color.Alpha{A: uint8(math.Round(255 * falloff(r, inner, outer)))})
		}
	}
	return img
}

func falloff(r, inner, outer float64) float64 {
	switch {
	case r <= inner:
		return 1
	case r >= outer:
		return 0
	}
	return 1 - (r-inner)/(outer-inner)
}
