package main

import (
	"fmt"
	"image"
	"path/filepath"
)

// maxRetinaBase is the largest base size that gets an @2x variant; the 512
// entry stays single-density.
const maxRetinaBase = 256

// iconsetFileName returns the name iconutil expects for one iconset member,
// e.g. icon_128x128.png or icon_128x128@2x.png.
func iconsetFileName(w, h int, retina bool) string {
	if retina {
		return fmt.Sprintf("icon_%dx%d@2x.png", w, h)
	}
	return fmt.Sprintf("icon_%dx%d.png", w, h)
}

// writeIconset stages the iconset files for the bundler into dir: one raster
// per base size plus a double-resolution @2x variant for sizes up to 256.
func writeIconset(dir string, src image.Image, sizes []int) error {
	for _, s := range sizes {
		if err := writePNG(filepath.Join(dir, iconsetFileName(s, s, false)), resizeTo(src, s, s)); err != nil {
			return err
		}
		if s <= maxRetinaBase {
			if err := writePNG(filepath.Join(dir, iconsetFileName(s, s, true)), resizeTo(src, 2*s, 2*s)); err != nil {
				return err
			}
		}
	}
	return nil
}
