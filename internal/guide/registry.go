package guide

import (
	"image/color"

	"github.com/jbeda/geom"
)

// Anchor describes where a guide sits relative to the surface. X and Y are
// fractions of the surface height measured from the centre with Y pointing
// up, so anchors keep their arrangement when the surface is resized.
type Anchor struct {
	Name  string
	X, Y  float64
	Color color.RGBA
}

// DefaultAnchors returns the three-point perspective layout: one point below
// the centre and two above it to the left and right.
func DefaultAnchors() []Anchor {
	return []Anchor{
		{Name: "bottom", X: 0, Y: -1.0 / 3, Color: color.RGBA{255, 0, 255, 255}},
		{Name: "left", X: -1.0 / 3, Y: 1.0 / 4, Color: color.RGBA{255, 255, 0, 255}},
		{Name: "right", X: 1.0 / 3, Y: 1.0 / 4, Color: color.RGBA{0, 255, 255, 255}},
	}
}

// Registry is the ordered set of guide targets. Order breaks score ties.
type Registry struct {
	anchors []Anchor
	targets []Target
}

// NewRegistry creates a registry for anchors. Call Layout before selecting.
func NewRegistry(anchors []Anchor) *Registry {
	r := &Registry{anchors: append([]Anchor(nil), anchors...)}
	r.targets = make([]Target, len(r.anchors))
	for i, a := range r.anchors {
		r.targets[i] = Target{Name: a.Name, Color: a.Color}
	}
	return r
}

// Layout recomputes target positions for a w×h surface. It must run after
// every resize, before the next Select, or guides drift.
func (r *Registry) Layout(w, h int) {
	cx := float64(w) / 2
	cy := float64(h) / 2
	fh := float64(h)
	for i, a := range r.anchors {
		r.targets[i].X = cx + a.X*fh
		r.targets[i].Y = cy - a.Y*fh
	}
}

// Len returns the number of targets.
func (r *Registry) Len() int { return len(r.targets) }

// Targets exposes the targets in registry order. The slice aliases the
// registry's storage.
func (r *Registry) Targets() []Target { return r.targets }

// Select scores every target against the stroke displacement and returns the
// first target with the strictly highest positive score, or nil. With a
// non-zero disp every target's Angle is refreshed as a side effect.
func (r *Registry) Select(pointer, disp geom.Coord) (*Target, float64) {
	var best *Target
	bestScore := 0.0
	for i := range r.targets {
		t := &r.targets[i]
		if s := Score(t, pointer, disp); s > bestScore {
			bestScore = s
			best = t
		}
	}
	return best, bestScore
}
