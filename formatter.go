package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
)

// Formatter ties together the output catalog and the platform icon bundler.
type Formatter struct {
	catalog Catalog
	bundler Bundler
	out     io.Writer // progress messages; os.Stdout outside tests
}

// NewFormatter creates a Formatter for the given catalog. bundler may be nil
// on platforms without an icns packaging tool.
func NewFormatter(catalog Catalog, bundler Bundler) *Formatter {
	return &Formatter{catalog: catalog, bundler: bundler, out: os.Stdout}
}

// Run converts the source image into every catalog output inside outDir.
// The source is read once and all resizes operate on that one copy. A failed
// run keeps whatever was already written; rerunning regenerates everything.
func (f *Formatter) Run(sourcePath, outDir string) error {
	if err := f.catalog.validate(); err != nil {
		return err
	}
	if _, err := os.Stat(sourcePath); err != nil {
		return fmt.Errorf("source image not found: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outDir, err)
	}

	src, err := loadSource(sourcePath)
	if err != nil {
		return err
	}

	for _, t := range f.catalog.PNGs {
		path := filepath.Join(outDir, t.Name)
		if err := writePNG(path, resizeTo(src, t.Width, t.Height)); err != nil {
			return err
		}
		fmt.Fprintf(f.out, "Wrote %s\n", path)
	}

	if err := f.writeICO(src, outDir); err != nil {
		return err
	}

	if f.bundler == nil {
		fmt.Fprintf(f.out, "Skipping %s (macOS only; rerun on macOS to generate it)\n", f.catalog.ICNSName)
	} else if err := f.writeICNS(src, outDir); err != nil {
		return err
	}

	fmt.Fprintln(f.out, "Done.")
	return nil
}

// writeICO encodes the multi-resolution Windows icon container.
func (f *Formatter) writeICO(src image.Image, outDir string) error {
	frames := make([]image.Image, 0, len(f.catalog.ICOSizes))
	for _, s := range f.catalog.ICOSizes {
		frames = append(frames, resizeTo(src, s, s))
	}

	path := filepath.Join(outDir, f.catalog.ICOName)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encodeICO(file, frames); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Fprintf(f.out, "Wrote %s\n", path)
	return nil
}

// writeICNS stages an iconset in a scoped temp directory and hands it to the
// platform bundler. The staging directory is removed on every exit path.
func (f *Formatter) writeICNS(src image.Image, outDir string) error {
	tmp, err := os.MkdirTemp("", "logo-formatter-*")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	iconset := filepath.Join(tmp, "icon.iconset")
	if err := os.Mkdir(iconset, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", iconset, err)
	}
	if err := writeIconset(iconset, src, f.catalog.ICNSSizes); err != nil {
		return err
	}

	path := filepath.Join(outDir, f.catalog.ICNSName)
	if err := f.bundler.Bundle(iconset, path); err != nil {
		return err
	}
	fmt.Fprintf(f.out, "Wrote %s\n", path)
	return nil
}
