package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/troid/internal/app"
	"github.com/example/troid/internal/config"
	"github.com/example/troid/internal/theme"
)

func testRoot(t *testing.T) *root {
	t.Helper()
	prev := detectScale
	detectScale = func() float64 { return 1 }
	t.Cleanup(func() { detectScale = prev })
	cfg := config.New()
	cfg.SaveDir = t.TempDir()
	return &root{program: "troid", config: cfg, activeTheme: theme.Default()}
}

func writeTrace(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stroke.trace")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleTrace = "resize 200 150\ndown 100 100 0.5\nmove 110 100 0.5\nup\n"

func TestReplayWritesPNG(t *testing.T) {
	r := testRoot(t)
	out := filepath.Join(t.TempDir(), "out.png")
	cmd, err := parseReplayCmd([]string{"-o", out, writeTrace(t, sampleTrace)}, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Fatalf("bounds = %v", b)
	}
	if _, _, _, a := img.At(105, 100).RGBA(); a == 0 {
		t.Fatal("replayed stroke missing")
	}
}

func TestReplayStdinToStdoutPDF(t *testing.T) {
	r := testRoot(t)
	cmd, err := parseReplayCmd([]string{"-pdf", "-o", "-", "-"}, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	cmd.stdin = strings.NewReader(sampleTrace)
	cmd.stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF-")) {
		t.Fatal("expected PDF output")
	}
}

func TestReplayDefaultsToSaveDir(t *testing.T) {
	r := testRoot(t)
	prev := nowFn
	nowFn = func() time.Time { return time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC) }
	t.Cleanup(func() { nowFn = prev })

	cmd, err := parseReplayCmd([]string{writeTrace(t, sampleTrace)}, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := filepath.Join(r.config.SaveDir, "troid-2024-03-04T05-06-07.000Z.png")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected %s: %v", want, err)
	}
}

func TestReplayBadTrace(t *testing.T) {
	r := testRoot(t)
	path := writeTrace(t, "down 1 2 3\nwobble\n")
	cmd, err := parseReplayCmd([]string{path}, r)
	if err != nil {
		t.Fatal(err)
	}
	err = cmd.Run()
	if err == nil || !strings.Contains(err.Error(), "line 2") || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected line error naming the file, got %v", err)
	}
}

func TestReplayNeedsTrace(t *testing.T) {
	_, err := parseReplayCmd(nil, testRoot(t))
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if help := uerr.Error(); !strings.Contains(help, "troid replay") || !strings.Contains(help, "-pdf") {
		t.Fatalf("help text = %q", help)
	}
}

func TestGuidesListsLayout(t *testing.T) {
	r := testRoot(t)
	cmd, err := parseGuidesCmd([]string{"-width", "800", "-height", "600"}, r)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	cmd.out = &out
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("output:\n%s", out.String())
	}
	if !strings.Contains(lines[1], "bottom") || !strings.Contains(lines[1], "400.0,500.0") || !strings.Contains(lines[1], "#ff00ff") {
		t.Fatalf("bottom line = %q", lines[1])
	}
}

func TestDrawAppliesOverrides(t *testing.T) {
	r := testRoot(t)
	var got *app.App
	prev := runWindow
	runWindow = func(a *app.App) { got = a }
	t.Cleanup(func() { runWindow = prev })

	cmd, err := parseDrawCmd([]string{"-brush", "12", "-scale", "2", "-ink", "navy", "-over", "-width", "640", "-height", "480"}, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("window not started")
	}
	if got.Width != 640 || got.Height != 480 {
		t.Errorf("size = %dx%d", got.Width, got.Height)
	}
	e := got.Engine
	if e.BaseSize != 12 || e.Scale != 2 || e.Multiply || e.Ink.B != 0x80 {
		t.Errorf("engine options = %+v", e)
	}
	if len(e.Anchors) != 3 {
		t.Errorf("anchors = %+v", e.Anchors)
	}
}

func TestDrawRejectsBadInk(t *testing.T) {
	r := testRoot(t)
	prev := runWindow
	runWindow = func(*app.App) { t.Fatal("window should not open") }
	t.Cleanup(func() { runWindow = prev })
	cmd, err := parseDrawCmd([]string{"-ink", "#12"}, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "-ink") {
		t.Fatalf("expected ink error, got %v", err)
	}
}

func TestDrawHelpListsKeys(t *testing.T) {
	d := &drawCmd{root: testRoot(t)}
	help := (&UsageError{of: d}).Error()
	for _, want := range []string{"troid draw", "S", "save the drawing as PNG", "Esc"} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}

func TestConfigPrint(t *testing.T) {
	r := testRoot(t)
	cmd, err := parseConfigCmd([]string{"print"}, r)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	cmd.out = &out
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "brush_size = 7") || !strings.Contains(out.String(), "[notify]") {
		t.Fatalf("config output:\n%s", out.String())
	}
	bad, _ := parseConfigCmd([]string{"explode"}, r)
	if err := bad.Run(); err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
}

func TestRootUnknownCommand(t *testing.T) {
	r := newRoot()
	err := r.Run([]string{"paint"})
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(uerr.Error(), "replay") {
		t.Fatalf("root help = %q", uerr.Error())
	}
}
