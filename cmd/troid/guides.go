package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/example/troid/internal/guide"
	"github.com/example/troid/internal/theme"
)

// guidesCmd prints the guide layout for a surface size.
type guidesCmd struct {
	*root
	fs     *flag.FlagSet
	width  int
	height int
	out    io.Writer
}

func (g *guidesCmd) FlagSet() *flag.FlagSet {
	return g.fs
}

func (g *guidesCmd) Program() string {
	return g.subcommand("guides")
}

func parseGuidesCmd(args []string, r *root) (*guidesCmd, error) {
	fs := flag.NewFlagSet("guides", flag.ExitOnError)
	g := &guidesCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(g)
	fs.IntVar(&g.width, "width", 1024, "surface width in pixels")
	fs.IntVar(&g.height, "height", 768, "surface height in pixels")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: g}
	}
	if g.width <= 0 || g.height <= 0 {
		return nil, fmt.Errorf("surface size %dx%d must be positive", g.width, g.height)
	}
	return g, nil
}

func (g *guidesCmd) Run() error {
	th := g.activeTheme
	if th == nil {
		th = theme.Default()
	}
	anchors := g.config.Anchors(th.GuideDefault)
	reg := guide.NewRegistry(anchors)
	reg.Layout(g.width, g.height)

	tw := tabwriter.NewWriter(g.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tANCHOR\tPIXEL\tCOLOR")
	for i, t := range reg.Targets() {
		a := anchors[i]
		fmt.Fprintf(tw, "%s\t%.4g,%.4g\t%.1f,%.1f\t%s\n", t.Name, a.X, a.Y, t.X, t.Y, theme.Hex(t.Color))
	}
	return tw.Flush()
}
