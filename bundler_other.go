//go:build !darwin

package main

// platformBundler returns nil: icns packaging needs the macOS iconutil tool.
func platformBundler() Bundler {
	return nil
}
