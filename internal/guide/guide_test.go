package guide

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

const eps = 1e-9

func TestScoreSymmetry(t *testing.T) {
	tgt := &Target{X: 40, Y: -25}
	pointer := geom.Coord{X: 10, Y: 3}
	a := Score(tgt, pointer, geom.Coord{X: 1, Y: 0})
	b := Score(tgt, pointer, geom.Coord{X: -1, Y: 0})
	if math.Abs(a-b) > eps {
		t.Fatalf("score not symmetric: %v vs %v", a, b)
	}
}

func TestScoreBoundaries(t *testing.T) {
	pointer := geom.Coord{X: 10, Y: 0}
	disp := geom.Coord{X: 10, Y: 0}

	onRay := &Target{X: 100, Y: 0}
	if s := Score(onRay, pointer, disp); math.Abs(s-1) > eps {
		t.Fatalf("on-ray score = %v, want 1", s)
	}
	perpendicular := &Target{X: 10, Y: 50}
	if s := Score(perpendicular, pointer, disp); math.Abs(s) > eps {
		t.Fatalf("perpendicular score = %v, want 0", s)
	}
}

func TestScoreZeroDisplacement(t *testing.T) {
	tgt := &Target{X: 5, Y: 5, Angle: 0.75}
	if s := Score(tgt, geom.Coord{X: 1, Y: 1}, geom.Coord{}); s != 0 {
		t.Fatalf("zero displacement score = %v, want 0", s)
	}
	if tgt.Angle != 0.75 {
		t.Fatalf("angle changed on zero displacement: %v", tgt.Angle)
	}
}

func TestScorePointerOnTarget(t *testing.T) {
	tgt := &Target{X: 5, Y: 5, Angle: 1.25}
	if s := Score(tgt, geom.Coord{X: 5, Y: 5}, geom.Coord{X: 1, Y: 0}); s != 0 {
		t.Fatalf("score = %v, want 0", s)
	}
	if tgt.Angle != 1.25 {
		t.Fatalf("angle changed to %v", tgt.Angle)
	}
}

func TestSnapIdempotent(t *testing.T) {
	tgt := &Target{X: 12, Y: -7, Angle: 0.7}
	once := Snap(tgt, geom.Coord{X: 33, Y: 91})
	twice := Snap(tgt, once)
	if math.Abs(once.X-twice.X) > eps || math.Abs(once.Y-twice.Y) > eps {
		t.Fatalf("snap not idempotent: %+v then %+v", once, twice)
	}
}

func TestSnapProjectsOntoRay(t *testing.T) {
	tgt := &Target{X: 0, Y: 0, Angle: 0}
	got := Snap(tgt, geom.Coord{X: 8, Y: 3})
	if math.Abs(got.X-8) > eps || math.Abs(got.Y) > eps {
		t.Fatalf("Snap = %+v, want (8,0)", got)
	}
}

func TestRegistryLayout(t *testing.T) {
	r := NewRegistry(DefaultAnchors())
	r.Layout(800, 600)
	ts := r.Targets()
	if len(ts) != 3 {
		t.Fatalf("got %d targets", len(ts))
	}
	if math.Abs(ts[0].X-400) > eps || math.Abs(ts[0].Y-500) > eps {
		t.Fatalf("bottom target at (%v,%v), want (400,500)", ts[0].X, ts[0].Y)
	}
	if math.Abs(ts[1].X-200) > eps || math.Abs(ts[1].Y-150) > eps {
		t.Fatalf("left target at (%v,%v), want (200,150)", ts[1].X, ts[1].Y)
	}
	r.Layout(800, 300)
	if math.Abs(ts[0].Y-250) > eps {
		t.Fatalf("layout did not follow resize: %v", ts[0].Y)
	}
}

func TestSelectPicksAlignedTarget(t *testing.T) {
	r := NewRegistry([]Anchor{{Name: "a"}, {Name: "b"}})
	ts := r.Targets()
	ts[0].X, ts[0].Y = 0, 100
	ts[1].X, ts[1].Y = 100, 0

	got, score := r.Select(geom.Coord{X: 60, Y: 0}, geom.Coord{X: 10, Y: 0})
	if got == nil || got.Name != "b" {
		t.Fatalf("selected %+v, want b", got)
	}
	if math.Abs(score-1) > eps {
		t.Fatalf("score = %v", score)
	}
	if ts[0].Angle == 0 {
		t.Fatalf("losing target angle not refreshed")
	}
}

func TestSelectTieKeepsFirst(t *testing.T) {
	r := NewRegistry([]Anchor{{Name: "first"}, {Name: "second"}})
	ts := r.Targets()
	ts[0].X, ts[0].Y = -100, 0
	ts[1].X, ts[1].Y = 100, 0
	got, _ := r.Select(geom.Coord{}, geom.Coord{X: 1, Y: 0})
	if got == nil || got.Name != "first" {
		t.Fatalf("tie resolved to %+v, want first", got)
	}
}

func TestSelectNoMotion(t *testing.T) {
	r := NewRegistry(DefaultAnchors())
	r.Layout(100, 100)
	if got, _ := r.Select(geom.Coord{X: 10, Y: 10}, geom.Coord{}); got != nil {
		t.Fatalf("expected no selection, got %+v", got)
	}
}
