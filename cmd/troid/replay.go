package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/troid/internal/export"
	"github.com/example/troid/internal/session"
	"github.com/example/troid/internal/trace"
)

// nowFn is replaced in tests.
var nowFn = time.Now

// replayCmd renders a recorded trace without opening a window.
type replayCmd struct {
	*root
	fs     *flag.FlagSet
	input  string
	output string
	pdf    bool
	width  int
	height int
	scale  float64
	stdin  io.Reader
	stdout io.Writer
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *replayCmd) Program() string {
	return c.subcommand("replay")
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	c := &replayCmd{root: r, fs: fs, stdin: os.Stdin, stdout: os.Stdout}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.output, "o", "", "output file; defaults to troid-<time>.png in save_dir, - for stdout")
	fs.BoolVar(&c.pdf, "pdf", false, "write PDF instead of PNG")
	fs.IntVar(&c.width, "width", 1024, "surface width when the trace has no resize event")
	fs.IntVar(&c.height, "height", 768, "surface height when the trace has no resize event")
	fs.Float64Var(&c.scale, "scale", 1, "device pixel scale used for brush and guide sizes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: c}
	}
	c.input = fs.Arg(0)
	if c.scale <= 0 {
		return nil, fmt.Errorf("-scale must be positive")
	}
	return c, nil
}

func (c *replayCmd) readTrace() ([]trace.Event, error) {
	if c.input == "-" {
		return trace.Parse(c.stdin)
	}
	f, err := os.Open(c.input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	events, err := trace.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.input, err)
	}
	return events, nil
}

func (c *replayCmd) Run() error {
	events, err := c.readTrace()
	if err != nil {
		return err
	}
	w, h := c.width, c.height
	if tw, th, ok := trace.Size(events); ok {
		w, h = tw, th
	}
	opts := c.engineOptions()
	opts.Scale = c.scale
	engine := session.New(w, h, opts)
	trace.Replay(engine, events)
	img := engine.Ink()

	ext := "png"
	encode := export.PNG
	if c.pdf || strings.EqualFold(filepath.Ext(c.output), ".pdf") {
		ext = "pdf"
		encode = export.PDF
	}
	switch c.output {
	case "-":
		return encode(c.stdout, img)
	case "":
		path, err := export.Save(c.config.SaveDir, img, nowFn(), ext)
		if err != nil {
			return fmt.Errorf("failed to save drawing: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", path)
		c.notifier.Save(path)
		return nil
	}
	f, err := os.Create(c.output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.output, err)
	}
	if err := encode(f, img); err != nil {
		f.Close()
		os.Remove(c.output)
		return fmt.Errorf("failed to write %s: %w", c.output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	c.notifier.Save(c.output)
	return nil
}
