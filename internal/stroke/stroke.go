// Package stroke turns a sparse stream of committed points into stamped
// quadratic curve segments.
package stroke

import (
	"math"

	"github.com/jbeda/geom"
)

// MinSteps is the smallest number of intervals a segment is split into.
const MinSteps = 10

// Point is a committed stroke waypoint with the brush diameter at that point.
type Point struct {
	X, Y float64
	Size float64
}

// Coord returns the position of p.
func (p Point) Coord() geom.Coord { return geom.Coord{X: p.X, Y: p.Y} }

// State keeps the two most recently committed points of a stroke.
type State struct {
	pts  [2]Point
	head int
}

// Reset starts a new stroke with both slots set to p so the first segment
// degenerates to a short dab.
func (s *State) Reset(p Point) {
	s.pts[0] = p
	s.pts[1] = p
	s.head = 0
}

// Push commits p; the current point becomes the previous one.
func (s *State) Push(p Point) {
	s.head ^= 1
	s.pts[s.head] = p
}

// Current returns the newest committed point.
func (s *State) Current() Point { return s.pts[s.head] }

// Previous returns the older committed point.
func (s *State) Previous() Point { return s.pts[s.head^1] }

// Stamp is a single placement of the brush sprite.
type Stamp struct {
	X, Y float64
	Size float64
}

// Segment is the quadratic curve from the current committed point to a new
// target, bent by a control point extrapolated from the previous segment.
type Segment struct {
	From, Ctrl, To   geom.Coord
	FromSize, ToSize float64
}

// NewSegment builds the curve for target given the stroke's last two points.
// The tangent is continued from prev->cur, so the curve is not C1 at knots.
func NewSegment(prev, cur, target Point) Segment {
	from := cur.Coord()
	ctrl := from.Plus(from.Minus(prev.Coord()).Times(0.5))
	return Segment{
		From:     from,
		Ctrl:     ctrl,
		To:       target.Coord(),
		FromSize: cur.Size,
		ToSize:   target.Size,
	}
}

// At evaluates the curve at parameter r in [0, 1].
func (s Segment) At(r float64) geom.Coord {
	a := lerpCoord(r, s.From, s.Ctrl)
	b := lerpCoord(r, s.Ctrl, s.To)
	return lerpCoord(r, a, b)
}

// SizeAt returns the interpolated stamp diameter at parameter r.
func (s Segment) SizeAt(r float64) float64 {
	return lerp(r, s.FromSize, s.ToSize)
}

// Steps returns how many intervals the segment is sampled with: one per two
// pixels of chord length, never fewer than MinSteps.
func (s Segment) Steps() int {
	return StepsFor(s.To.Minus(s.From).Magnitude())
}

// StepsFor returns the step count for a chord of length d.
func StepsFor(d float64) int {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return MinSteps
	}
	n := int(math.Ceil(d / 2))
	if n < MinSteps {
		return MinSteps
	}
	return n
}

// Stamps returns Steps()+1 stamps, the first at From and the last at To.
func (s Segment) Stamps() []Stamp {
	n := s.Steps()
	out := make([]Stamp, 0, n+1)
	for i := 0; i <= n; i++ {
		r := float64(i) / float64(n)
		p := s.At(r)
		out = append(out, Stamp{X: p.X, Y: p.Y, Size: s.SizeAt(r)})
	}
	return out
}

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

func lerpCoord(t float64, a, b geom.Coord) geom.Coord {
	return a.Plus(b.Minus(a).Times(t))
}
