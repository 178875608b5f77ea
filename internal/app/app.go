// Package app runs the drawing window on top of shiny.
package app

import (
	"image"
	"log"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"

	"github.com/example/troid/internal/notify"
	"github.com/example/troid/internal/session"
	"github.com/example/troid/internal/theme"
	"github.com/example/troid/internal/trace"
)

const (
	defaultWidth  = 1024
	defaultHeight = 768
)

// App holds the window configuration.
type App struct {
	Width, Height int
	Title         string
	Engine        session.Options
	Theme         *theme.Theme
	SaveDir       string
	Notifier      *notify.Notifier
	Recorder      *trace.Recorder

	onClose func()
}

// Option modifies an App during creation.
type Option func(*App)

// WithSize sets the initial window size in pixels.
func WithSize(w, h int) Option { return func(a *App) { a.Width, a.Height = w, h } }

// WithEngine sets the brush and guide options.
func WithEngine(opts session.Options) Option { return func(a *App) { a.Engine = opts } }

// WithTheme sets the palette.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.Theme = t } }

// WithSaveDir sets where s and p write exports.
func WithSaveDir(dir string) Option { return func(a *App) { a.SaveDir = dir } }

// WithNotifier sets the desktop notifier.
func WithNotifier(n *notify.Notifier) Option { return func(a *App) { a.Notifier = n } }

// WithRecorder records every input event to rec.
func WithRecorder(rec *trace.Recorder) Option { return func(a *App) { a.Recorder = rec } }

// WithOnClose registers fn to run when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App with defaults applied.
func New(opts ...Option) *App {
	a := &App{
		Width:  defaultWidth,
		Height: defaultHeight,
		Title:  "troid",
		Engine: session.DefaultOptions(),
		Theme:  theme.Default(),
	}
	for _, o := range opts {
		o(a)
	}
	if a.Width <= 0 || a.Height <= 0 {
		a.Width, a.Height = defaultWidth, defaultHeight
	}
	return a
}

// Run executes the UI loop using shiny's driver.
func (a *App) Run() { driver.Main(a.Main) }

func (a *App) Main(s screen.Screen) {
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: a.Width, Height: a.Height, Title: a.Title})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	if a.onClose != nil {
		defer a.onClose()
	}

	c := newController(session.New(a.Width, a.Height, a.Engine), a.Theme, a.SaveDir, a.Notifier, a.Recorder)

	for {
		switch e := w.NextEvent().(type) {
		case paint.Event:
			a.paint(s, w, c)
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
			if c.handle(e) {
				w.Send(paint.Event{})
			}
		case error:
			log.Print(e)
		default:
			if c.handle(e) {
				w.Send(paint.Event{})
			}
			if c.quit {
				return
			}
		}
	}
}

func (a *App) paint(s screen.Screen, w screen.Window, c *controller) {
	width, height := c.engine.Size()
	b, err := s.NewBuffer(image.Point{width, height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	c.frame(b.RGBA())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
