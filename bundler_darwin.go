//go:build darwin

package main

import (
	"fmt"
	"os/exec"
)

// iconutilBundler shells out to the macOS iconutil tool.
type iconutilBundler struct{}

func platformBundler() Bundler {
	return iconutilBundler{}
}

// Bundle compacts iconsetDir into an icns container at outPath. A non-zero
// iconutil exit surfaces as an error wrapping the exit status, with the
// tool's output appended.
func (iconutilBundler) Bundle(iconsetDir, outPath string) error {
	if _, err := exec.LookPath("iconutil"); err != nil {
		return fmt.Errorf("iconutil not found on PATH: %w", err)
	}
	cmd := exec.Command("iconutil", "-c", "icns", iconsetDir, "-o", outPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("iconutil -c icns: %w\n%s", err, out)
	}
	return nil
}
