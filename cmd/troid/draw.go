package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/example/troid/internal/app"
	"github.com/example/troid/internal/theme"
	"github.com/example/troid/internal/trace"
)

// drawCmd opens the drawing window.
type drawCmd struct {
	*root
	fs      *flag.FlagSet
	width   int
	height  int
	brush   float64
	scale   float64
	ink     string
	over    bool
	saveDir string
	record  string
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func (d *drawCmd) Program() string {
	return d.subcommand("draw")
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	fs.IntVar(&d.width, "width", 1024, "initial window width in pixels")
	fs.IntVar(&d.height, "height", 768, "initial window height in pixels")
	fs.Float64Var(&d.brush, "brush", 0, "brush diameter at full pressure (overrides brush_size)")
	fs.Float64Var(&d.scale, "scale", 0, "device pixel scale (overrides device_scale; 0 detects)")
	fs.StringVar(&d.ink, "ink", "", "ink colour as #RRGGBB or a colour name (overrides ink)")
	fs.BoolVar(&d.over, "over", false, "paint with source-over instead of multiply")
	fs.StringVar(&d.saveDir, "save-dir", "", "directory for s and p exports (overrides save_dir)")
	fs.StringVar(&d.record, "record", "", "write every input event to this trace file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: d}
	}
	if d.width <= 0 || d.height <= 0 {
		return nil, fmt.Errorf("window size %dx%d must be positive", d.width, d.height)
	}
	if d.brush < 0 || d.scale < 0 {
		return nil, fmt.Errorf("-brush and -scale must not be negative")
	}
	return d, nil
}

// applyOverrides folds the command line flags into the loaded configuration.
func (d *drawCmd) applyOverrides() error {
	cfg := d.config
	if d.brush > 0 {
		cfg.BrushSize = d.brush
	}
	if d.scale > 0 {
		cfg.DeviceScale = d.scale
	}
	if d.ink != "" {
		col, err := theme.ParseColor(d.ink)
		if err != nil {
			return fmt.Errorf("invalid -ink: %w", err)
		}
		cfg.Ink = col
	}
	if d.over {
		cfg.Multiply = false
	}
	if d.saveDir != "" {
		cfg.SaveDir = d.saveDir
	}
	return nil
}

// runWindow is replaced in tests.
var runWindow = func(a *app.App) { a.Run() }

func (d *drawCmd) Run() error {
	if err := d.applyOverrides(); err != nil {
		return err
	}
	opts := []app.Option{
		app.WithSize(d.width, d.height),
		app.WithEngine(d.engineOptions()),
		app.WithTheme(d.activeTheme),
		app.WithSaveDir(d.config.SaveDir),
		app.WithNotifier(d.notifier),
	}
	if d.record != "" {
		f, err := os.Create(d.record)
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		rec := trace.NewRecorder(f)
		rec.Record(trace.Event{Kind: trace.Resize, W: d.width, H: d.height})
		opts = append(opts, app.WithRecorder(rec), app.WithOnClose(func() {
			if err := rec.Flush(); err != nil {
				log.Printf("record: %v", err)
			}
			if err := f.Close(); err != nil {
				log.Printf("record: %v", err)
			}
		}))
	}
	runWindow(app.New(opts...))
	return nil
}
