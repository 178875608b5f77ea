// Package export writes the ink layer to disk as PNG or single page PDF.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const stampLayout = "2006-01-02T15-04-05.000Z"

// Filename returns the export name for t, e.g. troid-2024-01-02T03-04-05.000Z.png.
// The name carries no colons so it is valid on every filesystem.
func Filename(t time.Time, ext string) string {
	return fmt.Sprintf("troid-%s.%s", t.UTC().Format(stampLayout), ext)
}

// PNG encodes img to w.
func PNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// PDF writes img as the only page of a PDF sized to the image, one point per
// pixel.
func PDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("empty image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode page image: %w", err)
	}
	wd, ht := float64(b.Dx()), float64(b.Dy())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("ink", opts, &buf)
	pdf.ImageOptions("ink", 0, 0, wd, ht, false, opts, 0, "")
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return pdf.Output(w)
}

// Save writes img into dir using Filename and returns the path. ext selects
// the format: "png" or "pdf".
func Save(dir string, img image.Image, now time.Time, ext string) (string, error) {
	var enc func(io.Writer, image.Image) error
	switch ext {
	case "png":
		enc = PNG
	case "pdf":
		enc = PDF
	default:
		return "", fmt.Errorf("unsupported export format %q", ext)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, Filename(now, ext))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := enc(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
