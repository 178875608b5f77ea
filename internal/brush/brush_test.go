package brush

import (
	"math"
	"testing"
)

func TestWidthMonotonic(t *testing.T) {
	prev := Width(0, DefaultSize, 2)
	for i := 1; i <= 100; i++ {
		p := float64(i) / 100
		w := Width(p, DefaultSize, 2)
		if w < prev {
			t.Fatalf("width decreased at p=%v: %v < %v", p, w, prev)
		}
		prev = w
	}
}

func TestWidthFullPressure(t *testing.T) {
	if got, want := Width(1, 7, 1.5), 7*1.5; math.Abs(got-want) > 1e-12 {
		t.Fatalf("Width(1) = %v, want %v", got, want)
	}
}

func TestZeroPressureIsNoop(t *testing.T) {
	if w := Width(0, DefaultSize, 1); w != 0 {
		t.Fatalf("Width(0) = %v, want 0", w)
	}
	if a := Opacity(0); a != 0 {
		t.Fatalf("Opacity(0) = %v, want 0", a)
	}
}

func TestClampPressure(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-1, 0},
		{math.NaN(), 0},
		{0.25, 0.25},
		{3, 1},
	}
	for _, c := range cases {
		if got := ClampPressure(c.in); got != c.want {
			t.Errorf("ClampPressure(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSpriteFalloff(t *testing.T) {
	s := NewSprite(16)
	if got := s.AlphaAt(8, 8).A; got != 255 {
		t.Fatalf("centre alpha = %d, want 255", got)
	}
	if got := s.AlphaAt(0, 0).A; got != 0 {
		t.Fatalf("corner alpha = %d, want 0", got)
	}
	mid := s.AlphaAt(13, 8).A
	if mid == 0 || mid == 255 {
		t.Fatalf("expected partial coverage in the fade ring, got %d", mid)
	}
}

func TestSpriteDiameter(t *testing.T) {
	if d := SpriteDiameter(7, 2); d != 14 {
		t.Fatalf("SpriteDiameter = %d, want 14", d)
	}
	if d := SpriteDiameter(0, 1); d != 1 {
		t.Fatalf("SpriteDiameter floor = %d, want 1", d)
	}
}
