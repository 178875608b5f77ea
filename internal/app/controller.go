package app

import (
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"

	"github.com/example/troid/internal/clipboard"
	"github.com/example/troid/internal/export"
	"github.com/example/troid/internal/notify"
	"github.com/example/troid/internal/session"
	"github.com/example/troid/internal/theme"
	"github.com/example/troid/internal/trace"
)

const messageTTL = 2 * time.Second

// Swapped out in tests.
var (
	writeClipboard = clipboard.WriteImage
	saveImage      = export.Save
)

// controller maps window events onto the engine. It runs on the event
// goroutine only.
type controller struct {
	engine   *session.Engine
	theme    *theme.Theme
	saveDir  string
	notifier *notify.Notifier
	rec      *trace.Recorder
	now      func() time.Time

	actions map[string]func()
	keys    map[KeyShortcut]string

	message      string
	messageUntil time.Time
	quit         bool
}

func newController(e *session.Engine, th *theme.Theme, saveDir string, n *notify.Notifier, rec *trace.Recorder) *controller {
	c := &controller{
		engine:   e,
		theme:    th,
		saveDir:  saveDir,
		notifier: n,
		rec:      rec,
		now:      time.Now,
		actions:  map[string]func(){},
		keys:     map[KeyShortcut]string{},
	}
	fns := map[string]func(){
		"save":  func() { c.save("png") },
		"pdf":   func() { c.save("pdf") },
		"copy":  c.copy,
		"clear": c.clear,
		"quit":  func() { c.quit = true },
	}
	for _, b := range Bindings() {
		c.register(b.Action, b, fns[b.Action])
	}
	return c
}

func (c *controller) register(name string, keys KeyboardShortcuts, fn func()) {
	c.actions[name] = fn
	for _, sc := range keys.KeyboardShortcuts() {
		c.keys[sc] = name
	}
}

func (c *controller) record(ev trace.Event) {
	if c.rec != nil {
		c.rec.Record(ev)
	}
}

func (c *controller) say(format string, args ...any) {
	c.message = fmt.Sprintf(format, args...)
	c.messageUntil = c.now().Add(messageTTL)
	log.Print(c.message)
}

// status returns the message to show, if it has not expired.
func (c *controller) status() string {
	if c.message == "" || !c.now().Before(c.messageUntil) {
		return ""
	}
	return c.message
}

// handle applies e and reports whether the window needs repainting.
func (c *controller) handle(e any) bool {
	switch e := e.(type) {
	case lifecycle.Event:
		switch e.Crosses(lifecycle.StageFocused) {
		case lifecycle.CrossOff:
			c.record(trace.Event{Kind: trace.Blur})
			c.engine.Blur()
			return true
		case lifecycle.CrossOn:
			c.record(trace.Event{Kind: trace.Over})
			c.engine.PointerOver()
			return true
		}
		if e.To == lifecycle.StageDead {
			c.quit = true
		}
	case size.Event:
		if e.WidthPx <= 0 || e.HeightPx <= 0 {
			return false
		}
		c.record(trace.Event{Kind: trace.Resize, W: e.WidthPx, H: e.HeightPx})
		c.engine.Resize(e.WidthPx, e.HeightPx)
		return true
	case mouse.Event:
		return c.mouse(e)
	case key.Event:
		if e.Direction != key.DirPress {
			return false
		}
		if name, ok := c.keys[shortcutFor(e)]; ok {
			if fn := c.actions[name]; fn != nil {
				fn()
			}
			return true
		}
	}
	return false
}

func (c *controller) mouse(e mouse.Event) bool {
	s := session.Sample{X: float64(e.X), Y: float64(e.Y), Pressure: session.NoPressure}
	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return false
		}
		// Alt held at pointer-down guides the whole stroke.
		guided := e.Modifiers&key.ModAlt != 0
		c.record(trace.Event{Kind: trace.Down, Sample: s, Guided: guided})
		c.engine.PointerDown(s, guided)
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft {
			return false
		}
		c.record(trace.Event{Kind: trace.Up})
		c.engine.PointerUp()
	case mouse.DirNone:
		c.record(trace.Event{Kind: trace.Move, Sample: s})
		c.engine.PointerMove(s)
	default:
		return false
	}
	return true
}

func (c *controller) save(ext string) {
	path, err := saveImage(c.saveDir, c.engine.Ink(), c.now(), ext)
	if err != nil {
		log.Printf("save: %v", err)
		c.say("save failed")
		return
	}
	c.say("saved %s", path)
	c.notifier.Save(path)
}

func (c *controller) copy() {
	if err := writeClipboard(c.engine.Ink()); err != nil {
		log.Printf("copy: %v", err)
		c.say("copy failed")
		return
	}
	c.say("drawing copied to clipboard")
	c.notifier.Copy("drawing")
}

func (c *controller) clear() {
	c.engine.Clear()
	c.say("cleared")
}

// frame composes the surface and the status strip into dst.
func (c *controller) frame(dst *image.RGBA) {
	c.engine.Frame(dst, c.theme.Backdrop)
	if msg := c.status(); msg != "" {
		drawStatus(dst, msg, c.theme)
	}
}
