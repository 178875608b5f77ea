package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/jbeda/geom"
	"golang.org/x/image/vector"

	"github.com/example/troid/internal/guide"
)

const (
	markerRadius  = 5
	guideNear     = 20
	guideHalfSpan = 50
	circleSegs    = 32
)

// Overlay is the transient guide layer. It is redrawn from scratch on every
// pointer move.
type Overlay struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	scale float64
}

// NewOverlay creates a w×h overlay. scale sets the line width in device
// pixels.
func NewOverlay(w, h int, scale float64) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		z:     vector.NewRasterizer(w, h),
		scale: scale,
	}
}

// Image returns the overlay raster.
func (o *Overlay) Image() *image.RGBA { return o.img }

// Resize reallocates the overlay for a new surface size.
func (o *Overlay) Resize(w, h int) {
	if w == o.img.Bounds().Dx() && h == o.img.Bounds().Dy() {
		return
	}
	o.img = image.NewRGBA(image.Rect(0, 0, w, h))
	o.z = vector.NewRasterizer(w, h)
}

// Redraw clears the overlay and paints a marker for every target. While the
// pointer hovers the surface each target also gets a short guide segment
// aimed at the cursor; the active target's segment is drawn heavier.
func (o *Overlay) Redraw(targets []guide.Target, cursor geom.Coord, hover bool, active *guide.Target) {
	clear(o.img.Pix)
	lw := o.scale
	for i := range targets {
		t := &targets[i]
		o.ring(t.Coord(), markerRadius, lw, t.Color)
		if !hover {
			continue
		}
		w := lw
		if active != nil && active.Name == t.Name && active.X == t.X && active.Y == t.Y {
			w = 2 * lw
		}
		o.guideLine(t.Coord(), cursor, w, t.Color)
	}
}

func (o *Overlay) guideLine(from, cursor geom.Coord, lw float64, col color.RGBA) {
	d := cursor.Minus(from)
	p := d.Magnitude()
	if p == 0 {
		return
	}
	u := d.Times(1 / p)
	a := from.Plus(u.Times(math.Max(guideNear, p-guideHalfSpan)))
	b := from.Plus(u.Times(math.Max(guideNear, p+guideHalfSpan)))
	o.segment(a, b, lw, col)
}

func (o *Overlay) segment(a, b geom.Coord, lw float64, col color.RGBA) {
	d := b.Minus(a)
	l := d.Magnitude()
	if l == 0 {
		return
	}
	n := geom.Coord{X: -d.Y / l, Y: d.X / l}.Times(lw / 2)
	o.z.Reset(o.img.Bounds().Dx(), o.img.Bounds().Dy())
	o.z.DrawOp = draw.Over
	moveTo(o.z, a.Plus(n))
	lineTo(o.z, b.Plus(n))
	lineTo(o.z, b.Minus(n))
	lineTo(o.z, a.Minus(n))
	o.z.ClosePath()
	o.z.Draw(o.img, o.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (o *Overlay) ring(c geom.Coord, r, lw float64, col color.RGBA) {
	o.z.Reset(o.img.Bounds().Dx(), o.img.Bounds().Dy())
	o.z.DrawOp = draw.Over
	circle(o.z, c, r+lw/2, false)
	if inner := r - lw/2; inner > 0 {
		circle(o.z, c, inner, true)
	}
	o.z.Draw(o.img, o.img.Bounds(), image.NewUniform(col), image.Point{})
}

func circle(z *vector.Rasterizer, c geom.Coord, r float64, reverse bool) {
	for i := 0; i <= circleSegs; i++ {
		a := 2 * math.Pi * float64(i) / circleSegs
		if reverse {
			a = -a
		}
		p := geom.Coord{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
		if i == 0 {
			moveTo(z, p)
			continue
		}
		lineTo(z, p)
	}
	z.ClosePath()
}

func moveTo(z *vector.Rasterizer, p geom.Coord) { z.MoveTo(float32(p.X), float32(p.Y)) }
func lineTo(z *vector.Rasterizer, p geom.Coord) { z.LineTo(float32(p.X), float32(p.Y)) }
