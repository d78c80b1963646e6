package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// logoSize is the edge length of the rendered placeholder source logo.
const logoSize = 1024

// renderLogo draws the placeholder json-viewer logo: a rounded slate tile
// with an indigo brace glyph and three entry dots.
func renderLogo(size int) image.Image {
	dc := gg.NewContext(size, size)
	dc.SetColor(color.RGBA{0, 0, 0, 0})
	dc.Clear()

	s := float64(size)
	indigo := color.RGBA{99, 102, 241, 255}

	// Tile
	margin := s * 0.06
	dc.SetColor(color.RGBA{30, 36, 52, 255})
	dc.DrawRoundedRectangle(margin, margin, s-2*margin, s-2*margin, s*0.18)
	dc.Fill()

	// Braces
	face, err := loadLogoFace(s * 0.5)
	if err != nil {
		return dc.Image()
	}
	dc.SetFontFace(face)
	dc.SetColor(indigo)
	dc.DrawStringAnchored("{ }", s/2, s*0.44, 0.5, 0.5)

	// Entry dots
	dc.SetColor(color.RGBA{226, 232, 240, 255})
	for i := 0; i < 3; i++ {
		dc.DrawCircle(s*0.38+float64(i)*s*0.12, s*0.70, s*0.025)
		dc.Fill()
	}

	return dc.Image()
}

// loadLogoFace loads the embedded Go Bold font at the given size.
func loadLogoFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// writePlaceholder renders the placeholder logo to path so the pipeline can
// run before final artwork exists. It refuses to replace an existing source.
func writePlaceholder(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, remove it first", path)
	}
	return writePNG(path, renderLogo(logoSize))
}
