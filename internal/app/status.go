package app

import (
	"image"
	"image/draw"
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/troid/internal/theme"
)

const (
	statusSize    = 14
	statusPadding = 6
)

var (
	statusOnce sync.Once
	statusFace font.Face
)

// face returns the status font, falling back to the fixed bitmap face if the
// bundled TrueType font cannot be loaded.
func face() font.Face {
	statusOnce.Do(func() {
		statusFace = basicfont.Face7x13
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			log.Printf("parse font: %v", err)
			return
		}
		ff, err := opentype.NewFace(f, &opentype.FaceOptions{Size: statusSize, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			log.Printf("font face: %v", err)
			return
		}
		statusFace = ff
	})
	return statusFace
}

// drawStatus paints msg in a strip along the bottom-left corner of dst.
func drawStatus(dst *image.RGBA, msg string, th *theme.Theme) {
	fc := face()
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.StatusText), Face: fc}
	m := fc.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	wmsg := d.MeasureString(msg).Ceil()
	b := dst.Bounds()
	rect := image.Rect(b.Min.X, b.Max.Y-ascent-descent-2*statusPadding, b.Min.X+wmsg+2*statusPadding, b.Max.Y)
	draw.Draw(dst, rect, image.NewUniform(th.Status), image.Point{}, draw.Over)
	d.Dot = fixed.P(rect.Min.X+statusPadding, rect.Min.Y+statusPadding+ascent)
	d.DrawString(msg)
}
