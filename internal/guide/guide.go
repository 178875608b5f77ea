// Package guide implements vanishing-point guides: scoring candidate points
// against the start of a stroke and projecting later samples onto the ray
// through the chosen point.
package guide

import (
	"image/color"
	"math"

	"github.com/jbeda/geom"
)

// Target is a vanishing point in surface pixels. Angle caches the ray
// direction computed by the last Score call and is read by Snap.
type Target struct {
	Name  string
	X, Y  float64
	Angle float64
	Color color.RGBA
}

// Coord returns the position of t.
func (t *Target) Coord() geom.Coord { return geom.Coord{X: t.X, Y: t.Y} }

// Score rates how well a stroke starting with displacement disp lines up
// with the ray from t through pointer. The result is |cos| of the angle
// between the two directions, so moving away from t scores the same as
// moving toward it. Zero displacement scores 0.
//
// Score refreshes t.Angle when disp is non-zero and pointer is not on t.
func Score(t *Target, pointer, disp geom.Coord) float64 {
	l2 := disp.X*disp.X + disp.Y*disp.Y
	if l2 == 0 {
		return 0
	}
	d := pointer.Minus(t.Coord())
	l1 := d.X*d.X + d.Y*d.Y
	if l1 == 0 {
		return 0
	}
	t.Angle = math.Atan2(d.Y, d.X)
	s := math.Abs(d.X*disp.X+d.Y*disp.Y) / math.Sqrt(l1*l2)
	if s > 1 {
		s = 1
	}
	return s
}

// Snap projects pointer onto the line through t at t.Angle.
func Snap(t *Target, pointer geom.Coord) geom.Coord {
	u := geom.Coord{X: math.Cos(t.Angle), Y: math.Sin(t.Angle)}
	d := pointer.Minus(t.Coord())
	p := d.X*u.X + d.Y*u.Y
	return t.Coord().Plus(u.Times(p))
}
