// Package session is the event boundary of the drawing surface. An Engine
// receives pointer events in delivery order, keeps the stroke session alive
// between pointer-down and pointer-up (or focus loss), and drives the
// stroke and guide engines against the ink and overlay layers.
package session

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/google/uuid"
	"github.com/jbeda/geom"

	"github.com/example/troid/internal/brush"
	"github.com/example/troid/internal/canvas"
	"github.com/example/troid/internal/guide"
	"github.com/example/troid/internal/stroke"
)

// NoPressure marks a sample from a device without pressure sensing.
const NoPressure = -1

// Sample is one pointer reading in surface pixels.
type Sample struct {
	X, Y     float64
	Pressure float64
}

// Options configures an Engine.
type Options struct {
	BaseSize        float64
	Scale           float64
	Multiply        bool
	Ink             color.RGBA
	DefaultPressure float64
	Anchors         []guide.Anchor
}

// DefaultOptions mirrors the stock brush and guide layout.
func DefaultOptions() Options {
	return Options{
		BaseSize:        brush.DefaultSize,
		Scale:           1,
		Multiply:        true,
		Ink:             color.RGBA{0, 0, 0, 255},
		DefaultPressure: 0.5,
		Anchors:         guide.DefaultAnchors(),
	}
}

// Session is the state of one stroke. It exists only between pointer-down
// and the matching pointer-up or blur.
type Session struct {
	ID      string
	Drawing bool
	Guided  bool
	// Active is the resolved guide, nil while unresolved. It is chosen at
	// most once per stroke and is a copy, so later layouts leave it alone.
	Active  *guide.Target
	Origin  stroke.Point
	State   stroke.State
	Samples int
}

// Engine owns the layers and the current session.
type Engine struct {
	opts    Options
	ink     *canvas.Ink
	overlay *canvas.Overlay
	guides  *guide.Registry
	sess    *Session
	cursor  geom.Coord
	hover   bool
	w, h    int
}

// New creates an engine for a w×h surface.
func New(w, h int, opts Options) *Engine {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.BaseSize <= 0 {
		opts.BaseSize = brush.DefaultSize
	}
	if !(opts.DefaultPressure > 0) {
		opts.DefaultPressure = 0.5
	}
	sprite := brush.NewSprite(brush.SpriteDiameter(opts.BaseSize, opts.Scale))
	e := &Engine{
		opts:    opts,
		ink:     canvas.NewInk(w, h, sprite, canvas.WithInkColor(opts.Ink), canvas.WithMultiply(opts.Multiply)),
		overlay: canvas.NewOverlay(w, h, opts.Scale),
		guides:  guide.NewRegistry(opts.Anchors),
		w:       w,
		h:       h,
	}
	e.guides.Layout(w, h)
	e.redrawOverlay()
	return e
}

// Size returns the surface dimensions.
func (e *Engine) Size() (int, int) { return e.w, e.h }

// Session returns the live stroke session, or nil when no stroke is active.
func (e *Engine) Session() *Session { return e.sess }

// Drawing reports whether a stroke is in progress.
func (e *Engine) Drawing() bool { return e.sess != nil && e.sess.Drawing }

// Guides returns the laid out guide targets.
func (e *Engine) Guides() []guide.Target { return e.guides.Targets() }

// Ink returns a copy of the ink layer.
func (e *Engine) Ink() *image.RGBA { return e.ink.Snapshot() }

// Clear wipes the ink layer.
func (e *Engine) Clear() { e.ink.Clear() }

func (e *Engine) pressure(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return e.opts.DefaultPressure
	}
	return p
}

// PointerDown starts a stroke at s. guided arms the guide selector for the
// whole stroke.
func (e *Engine) PointerDown(s Sample, guided bool) {
	if e.sess != nil {
		e.end("restart")
	}
	e.hover = true
	e.cursor = geom.Coord{X: s.X, Y: s.Y}
	p := stroke.Point{X: s.X, Y: s.Y, Size: brush.Width(e.pressure(s.Pressure), e.opts.BaseSize, e.opts.Scale)}
	sess := &Session{
		ID:      uuid.NewString(),
		Drawing: true,
		Guided:  guided,
		Origin:  p,
	}
	sess.State.Reset(p)
	e.sess = sess
	Logger().Debug("stroke begin", "id", sess.ID, "x", s.X, "y", s.Y, "guided", guided)
	e.redrawOverlay()
}

// PointerMove handles a move sample. Outside a stroke it only updates the
// overlay.
func (e *Engine) PointerMove(s Sample) {
	e.hover = true
	e.cursor = geom.Coord{X: s.X, Y: s.Y}
	if e.Drawing() {
		e.cursor = e.extend(e.sess, s)
	}
	e.redrawOverlay()
}

// extend resolves and applies the guide, stamps the new segment and commits
// the point. It returns the position actually drawn to.
func (e *Engine) extend(sess *Session, s Sample) geom.Coord {
	pr := e.pressure(s.Pressure)
	pos := geom.Coord{X: s.X, Y: s.Y}
	if sess.Guided && sess.Active == nil {
		disp := pos.Minus(sess.Origin.Coord())
		if t, score := e.guides.Select(pos, disp); t != nil {
			// Copy so a relayout cannot move the guide under the stroke.
			tgt := *t
			sess.Active = &tgt
			Logger().Debug("guide resolved", "id", sess.ID, "guide", t.Name, "score", score)
		}
	}
	if sess.Active != nil {
		pos = guide.Snap(sess.Active, pos)
	}
	target := stroke.Point{X: pos.X, Y: pos.Y, Size: brush.Width(pr, e.opts.BaseSize, e.opts.Scale)}
	seg := stroke.NewSegment(sess.State.Previous(), sess.State.Current(), target)
	alpha := brush.Opacity(pr)
	for _, st := range seg.Stamps() {
		e.ink.Stamp(st.X, st.Y, st.Size, alpha)
	}
	sess.State.Push(target)
	sess.Samples++
	return pos
}

// PointerUp ends the current stroke.
func (e *Engine) PointerUp() { e.end("up") }

// Blur ends the current stroke exactly like PointerUp and clears hover.
func (e *Engine) Blur() {
	e.end("blur")
	e.hover = false
	e.redrawOverlay()
}

// PointerOver marks the pointer as hovering the surface.
func (e *Engine) PointerOver() {
	e.hover = true
	e.redrawOverlay()
}

func (e *Engine) end(reason string) {
	sess := e.sess
	if sess == nil {
		return
	}
	sess.Drawing = false
	e.sess = nil
	guideName := ""
	if sess.Active != nil {
		guideName = sess.Active.Name
	}
	Logger().Debug("stroke end", "id", sess.ID, "reason", reason, "samples", sess.Samples, "guide", guideName)
}

// Resize changes the surface size and re-lays out the guides so the next
// selection sees current positions.
func (e *Engine) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	e.w, e.h = w, h
	e.ink.Resize(w, h)
	e.overlay.Resize(w, h)
	e.guides.Layout(w, h)
	e.redrawOverlay()
}

func (e *Engine) redrawOverlay() {
	var active *guide.Target
	if e.sess != nil {
		active = e.sess.Active
	}
	e.overlay.Redraw(e.guides.Targets(), e.cursor, e.hover, active)
}

// Frame composites the visible surface into dst.
func (e *Engine) Frame(dst draw.Image, backdrop color.Color) {
	canvas.Compose(dst, backdrop, e.ink.Image(), e.overlay.Image())
}
