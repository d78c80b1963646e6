package main

// A Bundler turns a staged iconset directory into one icon container file.
// platformBundler returns the implementation for the current OS, or nil where
// the platform has no packaging tool; the Formatter reports the container as
// skipped in that case.
type Bundler interface {
	Bundle(iconsetDir, outPath string) error
}
