package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		err  bool
	}{
		{"#aaaaaa", color.RGBA{0xaa, 0xaa, 0xaa, 0xff}, false},
		{"#11223344", color.RGBA{0x11, 0x22, 0x33, 0x44}, false},
		{"Magenta", color.RGBA{0xff, 0x00, 0xff, 0xff}, false},
		{"#abc", color.RGBA{}, true},
		{"notacolour", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if (err != nil) != c.err {
			t.Errorf("ParseColor(%q) error = %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{1, 2, 3, 255}, {0xde, 0xad, 0xbe, 0xef}} {
		got, err := ParseColor(Hex(c))
		if err != nil || got != c {
			t.Errorf("round trip %+v -> %s -> %+v (%v)", c, Hex(c), got, err)
		}
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Mine\nbackdrop: #101010\nUnknown: #ffffff\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "Mine" || th.Backdrop != (color.RGBA{0x10, 0x10, 0x10, 0xff}) {
		t.Fatalf("theme = %+v", th)
	}
	if th.StatusText != Default().StatusText {
		t.Fatalf("missing key did not keep default")
	}
	if _, err := Parse(strings.NewReader("Status: red-ish")); err == nil {
		t.Fatal("expected error for bad colour")
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: Mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir}
	th, err := l.Load("mine")
	if err != nil || th.Name != "Mine" {
		t.Fatalf("Load(mine) = %+v, %v", th, err)
	}
	th, err = l.Load("dark")
	if err != nil || th.Name != "Dark" {
		t.Fatalf("Load(dark) = %+v, %v", th, err)
	}
	if _, err := l.Load("missing"); err == nil {
		t.Fatal("expected not found")
	}
	if got := Embedded(); len(got) != 2 || got[0] != "dark" || got[1] != "default" {
		t.Fatalf("Embedded = %v", got)
	}
}

func TestFieldsAndGet(t *testing.T) {
	fields := Fields()
	if len(fields) != 4 || fields[0] != "Backdrop" {
		t.Fatalf("Fields = %v", fields)
	}
	if c, ok := Get(Default(), "Backdrop"); !ok || c != Default().Backdrop {
		t.Fatalf("Get = %+v %v", c, ok)
	}
	if _, ok := Get(Default(), "Name"); ok {
		t.Fatal("Name is not a colour")
	}
}
