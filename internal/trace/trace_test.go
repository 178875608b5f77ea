package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/example/troid/internal/session"
)

func TestParse(t *testing.T) {
	input := `# sample
resize 200 100

down 10 20 0.5 alt
move 15 20 0.75
up
over
blur
`
	events, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	kinds := []Kind{Resize, Down, Move, Up, Over, Blur}
	if len(events) != len(kinds) {
		t.Fatalf("got %d events, want %d", len(events), len(kinds))
	}
	for i, k := range kinds {
		if events[i].Kind != k {
			t.Errorf("event %d kind = %s, want %s", i, events[i].Kind, k)
		}
	}
	if !events[1].Guided {
		t.Error("alt modifier lost")
	}
	if events[2].Sample != (session.Sample{X: 15, Y: 20, Pressure: 0.75}) {
		t.Errorf("move sample = %+v", events[2].Sample)
	}
	if w, h, ok := Size(events); !ok || w != 200 || h != 100 {
		t.Errorf("Size = %d %d %v", w, h, ok)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"jump 1 2", "unknown event"},
		{"down 1 2", "down wants"},
		{"down 1 2 0.5 shift", "unknown modifier"},
		{"move a 2 0.5", "invalid syntax"},
		{"resize 0 10", "must be positive"},
		{"up now", "takes no arguments"},
	}
	for _, c := range cases {
		_, err := Parse(strings.NewReader("\n" + c.in))
		if err == nil {
			t.Errorf("%q: expected error", c.in)
			continue
		}
		if !strings.Contains(err.Error(), c.want) || !strings.HasPrefix(err.Error(), "line 2:") {
			t.Errorf("%q: error %q", c.in, err)
		}
	}
}

func TestRecorderOutputParses(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)
	in := []Event{
		{Kind: Resize, W: 64, H: 48},
		{Kind: Down, Sample: session.Sample{X: 1.5, Y: 2, Pressure: 0.25}, Guided: true},
		{Kind: Move, Sample: session.Sample{X: 3, Y: 4, Pressure: 1}},
		{Kind: Up},
	}
	for _, ev := range in {
		rec.Record(ev)
	}
	if err := rec.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d events", len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("event %d: %+v vs %+v", i, out[i], in[i])
		}
	}
}

func TestReplayDrawsStroke(t *testing.T) {
	events, err := Parse(strings.NewReader("resize 200 200\ndown 100 100 0.5\nmove 110 100 0.5\nup\n"))
	if err != nil {
		t.Fatal(err)
	}
	e := session.New(50, 50, session.DefaultOptions())
	Replay(e, events)
	if w, h := e.Size(); w != 200 || h != 200 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if e.Drawing() {
		t.Fatal("stroke left open")
	}
	if a := e.Ink().RGBAAt(105, 100).A; a == 0 {
		t.Fatal("replayed stroke left no ink")
	}
}
