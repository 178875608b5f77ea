package display

import "testing"

func TestXftDPI(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"Xft.antialias:\t1\nXft.dpi:\t192\n", 192, true},
		{"Xft.dpi: 96", 96, true},
		{"Xcursor.size: 24\n", 0, false},
		{"Xft.dpi: lots\n", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := xftDPI(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("xftDPI(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestFromDPI(t *testing.T) {
	cases := map[float64]float64{
		72:  1,
		96:  1,
		120: 1.25,
		144: 1.5,
		192: 2,
	}
	for dpi, want := range cases {
		if got := fromDPI(dpi); got != want {
			t.Errorf("fromDPI(%v) = %v, want %v", dpi, got, want)
		}
	}
}

func TestPhysicalDPI(t *testing.T) {
	if _, ok := physicalDPI(1920, 0); ok {
		t.Fatal("zero millimetres should not yield a dpi")
	}
	dpi, ok := physicalDPI(1920, 508)
	if !ok || dpi != 96 {
		t.Fatalf("physicalDPI = %v, %v", dpi, ok)
	}
}

func TestScaleOverride(t *testing.T) {
	t.Setenv("TROID_SCALE", "1.5")
	if got := Scale(); got != 1.5 {
		t.Fatalf("Scale = %v", got)
	}
}
