package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

// Compose paints one visible frame into dst: the backdrop, then the ink
// layer, then the guide overlay. Nothing is skipped between frames.
func Compose(dst draw.Image, backdrop color.Color, ink, overlay image.Image) {
	b := dst.Bounds()
	draw.Draw(dst, b, image.NewUniform(backdrop), image.Point{}, draw.Src)
	if ink != nil {
		draw.Draw(dst, ink.Bounds().Add(b.Min), ink, ink.Bounds().Min, draw.Over)
	}
	if overlay != nil {
		draw.Draw(dst, overlay.Bounds().Add(b.Min), overlay, overlay.Bounds().Min, draw.Over)
	}
}
