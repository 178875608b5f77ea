package config

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/example/troid/internal/brush"
	"github.com/example/troid/internal/guide"
	"github.com/example/troid/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Guide is a configured vanishing point. X and Y are fractions of the
// surface height from the centre, Y up. A zero Color means the theme's
// GuideDefault.
type Guide struct {
	Name  string
	X, Y  float64
	Color color.RGBA
}

// Config holds the application configuration.
type Config struct {
	Theme           string
	SaveDir         string
	BrushSize       float64
	DeviceScale     float64 // 0 detects
	Multiply        bool
	Ink             color.RGBA
	DefaultPressure float64
	Notify          Notify
	Guides          []Guide
	Themes          map[string]*theme.Theme
}

// New creates a Config with defaults. Guides is empty, which selects the
// stock three-point layout.
func New() *Config {
	return &Config{
		Theme:           "", // Empty allows fallback to env/default
		BrushSize:       brush.DefaultSize,
		Multiply:        true,
		Ink:             color.RGBA{0, 0, 0, 255},
		DefaultPressure: 0.5,
		Themes:          make(map[string]*theme.Theme),
	}
}

// Anchors returns the guide anchors to lay out, substituting fallback for
// guides without a colour.
func (c *Config) Anchors(fallback color.RGBA) []guide.Anchor {
	if len(c.Guides) == 0 {
		return guide.DefaultAnchors()
	}
	out := make([]guide.Anchor, len(c.Guides))
	for i, g := range c.Guides {
		col := g.Color
		if col == (color.RGBA{}) {
			col = fallback
		}
		out[i] = guide.Anchor{Name: g.Name, X: g.X, Y: g.Y, Color: col}
	}
	return out
}

func (c *Config) guide(name string) *Guide {
	for i := range c.Guides {
		if c.Guides[i].Name == name {
			return &c.Guides[i]
		}
	}
	c.Guides = append(c.Guides, Guide{Name: name})
	return &c.Guides[len(c.Guides)-1]
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "brush_size = %s\n", ff(c.BrushSize))
	fmt.Fprintf(&sb, "device_scale = %s\n", ff(c.DeviceScale))
	fmt.Fprintf(&sb, "multiply = %v\n", c.Multiply)
	fmt.Fprintf(&sb, "ink = %s\n", theme.Hex(c.Ink))
	fmt.Fprintf(&sb, "default_pressure = %s\n", ff(c.DefaultPressure))
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Guide order is significant, themes are sorted.
	for _, g := range c.Guides {
		fmt.Fprintf(&sb, "[guide.%s]\n", g.Name)
		fmt.Fprintf(&sb, "x = %s\n", ff(g.X))
		fmt.Fprintf(&sb, "y = %s\n", ff(g.Y))
		if g.Color != (color.RGBA{}) {
			fmt.Fprintf(&sb, "color = %s\n", theme.Hex(g.Color))
		}
		sb.WriteString("\n")
	}

	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, key := range theme.Fields() {
			col, _ := theme.Get(t, key)
			fmt.Fprintf(&sb, "%s: %s\n", key, theme.Hex(col))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func ff(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
