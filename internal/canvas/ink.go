// Package canvas owns the raster layers: the persistent ink layer that
// strokes are stamped into, the guide overlay, and the per-frame composite.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Ink is the persistent stroke layer.
type Ink struct {
	img      *image.RGBA
	sprite   *image.Alpha
	color    color.RGBA
	multiply bool
	scratch  *image.Alpha
}

// InkOption configures an Ink layer.
type InkOption func(*Ink)

// WithInkColor sets the colour stamps are drawn in. Alpha is ignored.
func WithInkColor(c color.RGBA) InkOption {
	return func(k *Ink) { k.color = color.RGBA{c.R, c.G, c.B, 255} }
}

// WithMultiply selects multiply blending so overlapping stamps darken.
func WithMultiply(on bool) InkOption { return func(k *Ink) { k.multiply = on } }

// NewInk creates a transparent w×h ink layer that stamps sprite.
func NewInk(w, h int, sprite *image.Alpha, opts ...InkOption) *Ink {
	k := &Ink{
		img:      image.NewRGBA(image.Rect(0, 0, w, h)),
		sprite:   sprite,
		color:    color.RGBA{0, 0, 0, 255},
		multiply: true,
		scratch:  image.NewAlpha(image.Rect(0, 0, 0, 0)),
	}
	for _, o := range opts {
		o(k)
	}
	return k
}

// Image returns the live layer. Callers must not write to it.
func (k *Ink) Image() *image.RGBA { return k.img }

// Bounds returns the layer bounds.
func (k *Ink) Bounds() image.Rectangle { return k.img.Bounds() }

// Snapshot returns a copy of the layer suitable for export.
func (k *Ink) Snapshot() *image.RGBA {
	out := image.NewRGBA(k.img.Bounds())
	copy(out.Pix, k.img.Pix)
	return out
}

// Clear erases every stamp.
func (k *Ink) Clear() {
	clear(k.img.Pix)
}

// Resize grows the layer to at least w×h, keeping existing pixels anchored
// at the top-left corner. The layer never shrinks, so strokes survive a
// window that is narrowed and widened again.
func (k *Ink) Resize(w, h int) {
	b := k.img.Bounds()
	w, h = max(w, b.Dx()), max(h, b.Dy())
	if w == b.Dx() && h == b.Dy() {
		return
	}
	next := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(next, next.Bounds(), k.img, image.Point{}, draw.Src)
	k.img = next
}

// Stamp places the sprite centred at (x, y), scaled to size and faded by
// alpha. It reports whether any pixel was written. Empty, transparent or
// non-finite stamps are ignored.
func (k *Ink) Stamp(x, y, size, alpha float64) bool {
	if !(size > 0) || !(alpha > 0) || math.IsInf(size, 0) || !finite(x, y) {
		return false
	}
	if alpha > 1 {
		alpha = 1
	}
	half := size / 2
	r := image.Rect(
		int(math.Floor(x-half)), int(math.Floor(y-half)),
		int(math.Ceil(x+half)), int(math.Ceil(y+half)),
	).Intersect(k.img.Bounds())
	if r.Empty() {
		return false
	}
	mask := k.coverage(r, x-half, y-half, size)
	return k.blend(r, mask, alpha)
}

// coverage scales the sprite into the scratch mask for destination rect r.
func (k *Ink) coverage(r image.Rectangle, left, top, size float64) *image.Alpha {
	w, h := r.Dx(), r.Dy()
	if k.scratch.Bounds().Dx() < w || k.scratch.Bounds().Dy() < h {
		k.scratch = image.NewAlpha(image.Rect(0, 0, max(w, k.scratch.Bounds().Dx()), max(h, k.scratch.Bounds().Dy())))
	}
	mask := k.scratch.SubImage(image.Rect(0, 0, w, h)).(*image.Alpha)
	for y := 0; y < h; y++ {
		clear(mask.Pix[y*mask.Stride : y*mask.Stride+w])
	}
	sb := k.sprite.Bounds()
	s := size / float64(sb.Dx())
	s2d := f64.Aff3{
		s, 0, left - float64(r.Min.X),
		0, s, top - float64(r.Min.Y),
	}
	xdraw.ApproxBiLinear.Transform(mask, s2d, k.sprite, sb, xdraw.Src, nil)
	return mask
}

func (k *Ink) blend(r image.Rectangle, mask *image.Alpha, alpha float64) bool {
	cr := float64(k.color.R) / 255
	cg := float64(k.color.G) / 255
	cb := float64(k.color.B) / 255
	touched := false
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			m := mask.Pix[y*mask.Stride+x]
			if m == 0 {
				continue
			}
			as := float64(m) / 255 * alpha
			i := k.img.PixOffset(r.Min.X+x, r.Min.Y+y)
			px := k.img.Pix[i : i+4 : i+4]
			ab := float64(px[3]) / 255
			sr, sg, sb := cr*as, cg*as, cb*as
			br, bg, bb := float64(px[0])/255, float64(px[1])/255, float64(px[2])/255
			var or, og, ob float64
			if k.multiply {
				or = sr*(1-ab) + br*(1-as) + sr*br
				og = sg*(1-ab) + bg*(1-as) + sg*bg
				ob = sb*(1-ab) + bb*(1-as) + sb*bb
			} else {
				or = sr + br*(1-as)
				og = sg + bg*(1-as)
				ob = sb + bb*(1-as)
			}
			oa := as + ab*(1-as)
			px[0] = to8(or)
			px[1] = to8(og)
			px[2] = to8(ob)
			px[3] = to8(oa)
			touched = true
		}
	}
	return touched
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
