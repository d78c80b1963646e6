package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
)

// loadSource reads and decodes the source image once, normalized to NRGBA.
// The returned image is the in-memory working copy for the whole run; callers
// never reopen the path.
func loadSource(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ensureNRGBA(img), nil
}

// ensureNRGBA returns img unchanged when it is already NRGBA, or an NRGBA
// copy otherwise. Runs once per source so every resize sees the same color
// mode.
func ensureNRGBA(img image.Image) image.Image {
	if _, ok := img.(*image.NRGBA); ok {
		return img
	}
	return imaging.Clone(img)
}

// resizeTo scales img to exactly w x h with Lanczos resampling. Aspect ratio
// is not preserved; the catalog dictates the final geometry.
func resizeTo(img image.Image, w, h int) *image.NRGBA {
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// keepAlpha hides the wrapped image's Opaque method so the PNG encoder emits
// an alpha channel even when every pixel is opaque. Consumers of the icon set
// expect uniform RGBA outputs.
type keepAlpha struct{ image.Image }

func (keepAlpha) Opaque() bool { return false }

// encodePNG encodes img as PNG bytes, always with an alpha channel.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, keepAlpha{img}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writePNG writes img to path as PNG, replacing any existing file.
func writePNG(path string, img image.Image) error {
	data, err := encodePNG(img)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
