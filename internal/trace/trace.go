// Package trace reads and writes recorded pointer input so a drawing can be
// reproduced without a window.
//
// A trace is line oriented:
//
//	resize 800 600
//	down 100 100 0.5 alt
//	move 110 100 0.5
//	up
//
// Blank lines and lines starting with # are ignored.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/troid/internal/session"
)

// Kind identifies a trace event.
type Kind string

const (
	Down   Kind = "down"
	Move   Kind = "move"
	Up     Kind = "up"
	Blur   Kind = "blur"
	Over   Kind = "over"
	Resize Kind = "resize"
)

// Event is one recorded input.
type Event struct {
	Kind   Kind
	Sample session.Sample
	Guided bool
	W, H   int
}

// String returns the trace line for ev.
func (ev Event) String() string {
	switch ev.Kind {
	case Down:
		s := fmt.Sprintf("down %s %s %s", ff(ev.Sample.X), ff(ev.Sample.Y), ff(ev.Sample.Pressure))
		if ev.Guided {
			s += " alt"
		}
		return s
	case Move:
		return fmt.Sprintf("move %s %s %s", ff(ev.Sample.X), ff(ev.Sample.Y), ff(ev.Sample.Pressure))
	case Resize:
		return fmt.Sprintf("resize %d %d", ev.W, ev.H)
	default:
		return string(ev.Kind)
	}
}

func ff(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// Parse reads every event from r.
func Parse(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := parseLine(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		events = append(events, ev)
	}
	return events, scanner.Err()
}

func parseLine(f []string) (Event, error) {
	ev := Event{Kind: Kind(f[0])}
	switch ev.Kind {
	case Down:
		if len(f) != 4 && len(f) != 5 {
			return ev, fmt.Errorf("down wants x y pressure [alt], got %d fields", len(f)-1)
		}
		if len(f) == 5 {
			if f[4] != "alt" {
				return ev, fmt.Errorf("unknown modifier %q", f[4])
			}
			ev.Guided = true
		}
		s, err := parseSample(f[1:4])
		if err != nil {
			return ev, err
		}
		ev.Sample = s
	case Move:
		if len(f) != 4 {
			return ev, fmt.Errorf("move wants x y pressure, got %d fields", len(f)-1)
		}
		s, err := parseSample(f[1:4])
		if err != nil {
			return ev, err
		}
		ev.Sample = s
	case Resize:
		if len(f) != 3 {
			return ev, fmt.Errorf("resize wants w h, got %d fields", len(f)-1)
		}
		w, err := strconv.Atoi(f[1])
		if err != nil {
			return ev, fmt.Errorf("resize width: %w", err)
		}
		h, err := strconv.Atoi(f[2])
		if err != nil {
			return ev, fmt.Errorf("resize height: %w", err)
		}
		if w <= 0 || h <= 0 {
			return ev, fmt.Errorf("resize %dx%d must be positive", w, h)
		}
		ev.W, ev.H = w, h
	case Up, Blur, Over:
		if len(f) != 1 {
			return ev, fmt.Errorf("%s takes no arguments", ev.Kind)
		}
	default:
		return ev, fmt.Errorf("unknown event %q", f[0])
	}
	return ev, nil
}

func parseSample(f []string) (session.Sample, error) {
	var v [3]float64
	for i, s := range f {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return session.Sample{}, err
		}
		v[i] = x
	}
	return session.Sample{X: v[0], Y: v[1], Pressure: v[2]}, nil
}

// Size returns the surface size from the first resize event, or ok=false.
func Size(events []Event) (w, h int, ok bool) {
	for _, ev := range events {
		if ev.Kind == Resize {
			return ev.W, ev.H, true
		}
	}
	return 0, 0, false
}

// Replay feeds events to e in order.
func Replay(e *session.Engine, events []Event) {
	for _, ev := range events {
		Apply(e, ev)
	}
}

// Apply feeds a single event to e.
func Apply(e *session.Engine, ev Event) {
	switch ev.Kind {
	case Down:
		e.PointerDown(ev.Sample, ev.Guided)
	case Move:
		e.PointerMove(ev.Sample)
	case Up:
		e.PointerUp()
	case Blur:
		e.Blur()
	case Over:
		e.PointerOver()
	case Resize:
		e.Resize(ev.W, ev.H)
	}
}

// Recorder writes events as they happen.
type Recorder struct {
	w   *bufio.Writer
	err error
}

// NewRecorder returns a Recorder writing to w. Call Flush when done.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: bufio.NewWriter(w)}
}

// Record appends ev. The first write error sticks and is returned by Flush.
func (r *Recorder) Record(ev Event) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintln(r.w, ev.String())
}

// Flush writes buffered events.
func (r *Recorder) Flush() error {
	if r.err != nil {
		return r.err
	}
	return r.w.Flush()
}
