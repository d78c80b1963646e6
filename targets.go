package main

import "fmt"

// Target maps one output filename to its pixel size.
type Target struct {
	Name   string
	Width  int
	Height int
}

// Catalog is the fixed set of outputs one run produces. It is built once by
// defaultCatalog and handed to the Formatter, so tests can substitute a
// smaller table without touching the pipeline itself.
type Catalog struct {
	PNGs      []Target
	ICOName   string
	ICOSizes  []int
	ICNSName  string
	ICNSSizes []int
}

// defaultCatalog returns the icon catalog consumed by src-tauri/icons.
func defaultCatalog() Catalog {
	return Catalog{
		PNGs: []Target{
			{"32x32.png", 32, 32},
			{"128x128.png", 128, 128},
			{"128x128@2x.png", 256, 256},
			{"icon.png", 512, 512},
			{"Square30x30Logo.png", 30, 30},
			{"Square44x44Logo.png", 44, 44},
			{"Square71x71Logo.png", 71, 71},
			{"Square89x89Logo.png", 89, 89},
			{"Square107x107Logo.png", 107, 107},
			{"Square142x142Logo.png", 142, 142},
			{"Square150x150Logo.png", 150, 150},
			{"Square284x284Logo.png", 284, 284},
			{"Square310x310Logo.png", 310, 310},
			{"StoreLogo.png", 50, 50},
		},
		ICOName:  "icon.ico",
		ICOSizes: []int{16, 32, 48, 256},
		// iconutil base sizes; every size up to 256 also gets an @2x variant.
		ICNSName:  "icon.icns",
		ICNSSizes: []int{16, 32, 64, 128, 256, 512},
	}
}

// validate rejects catalogs that would write the same file twice or request
// an empty resize.
func (c Catalog) validate() error {
	seen := make(map[string]bool, len(c.PNGs))
	for _, t := range c.PNGs {
		if t.Width <= 0 || t.Height <= 0 {
			return fmt.Errorf("target %s has invalid size %dx%d", t.Name, t.Width, t.Height)
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate target filename %s", t.Name)
		}
		seen[t.Name] = true
	}
	for _, name := range []string{c.ICOName, c.ICNSName} {
		if name == "" {
			continue
		}
		if seen[name] {
			return fmt.Errorf("duplicate target filename %s", name)
		}
		seen[name] = true
	}
	for _, s := range c.ICOSizes {
		if s <= 0 {
			return fmt.Errorf("invalid ico frame size %d", s)
		}
	}
	for _, s := range c.ICNSSizes {
		if s <= 0 {
			return fmt.Errorf("invalid iconset size %d", s)
		}
	}
	return nil
}
