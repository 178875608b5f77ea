package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/example/troid/internal/config"
	"github.com/example/troid/internal/display"
	"github.com/example/troid/internal/notify"
	"github.com/example/troid/internal/session"
	"github.com/example/troid/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	saveAlerts  bool
	copyAlerts  bool
	verbose     bool
	themeName   string
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) subcommand(name string) string {
	return strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("troid", flag.ExitOnError),
		program:  "troid",
		notifier: notify.New(notify.LoadPreferences()),
		config:   cfg,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a drawing")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.verbose, "v", false, "log stroke events to stderr")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark, or a .theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}
	if r.verbose {
		session.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "replay":
		cmd, err = parseReplayCmd(subArgs, r)
	case "guides":
		cmd, err = parseGuidesCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) resolveTheme() *theme.Theme {
	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("TROID_THEME")
	}
	if themeName == "" {
		themeName = r.config.Theme
	}
	if t, ok := r.config.Themes[themeName]; ok {
		return t
	}
	t, err := theme.NewLoader().Load(themeName)
	if err != nil {
		if themeName != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", themeName, err)
		}
		return theme.Default()
	}
	return t
}

// detectScale is replaced in tests.
var detectScale = display.Scale

// engineOptions builds the brush and guide settings from the configuration.
func (r *root) engineOptions() session.Options {
	cfg := r.config
	th := r.activeTheme
	if th == nil {
		th = theme.Default()
	}
	scale := cfg.DeviceScale
	if scale <= 0 {
		scale = detectScale()
	}
	return session.Options{
		BaseSize:        cfg.BrushSize,
		Scale:           scale,
		Multiply:        cfg.Multiply,
		Ink:             cfg.Ink,
		DefaultPressure: cfg.DefaultPressure,
		Anchors:         cfg.Anchors(th.GuideDefault),
	}
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
