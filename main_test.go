package main

import (
	"strings"
	"testing"
)

func TestVersionString(t *testing.T) {
	got := versionString()
	if !strings.HasPrefix(got, "logo-formatter ") {
		t.Errorf("versionString() = %q, want logo-formatter prefix", got)
	}
	if !strings.Contains(got, Version) {
		t.Errorf("versionString() = %q, want it to contain %q", got, Version)
	}
}

func TestVersionStringLong(t *testing.T) {
	got := versionStringLong()
	for _, part := range []string{Version, CommitHash, BuildTimestamp, Builder, GithubRepo} {
		if !strings.Contains(got, part) {
			t.Errorf("versionStringLong() missing %q:\n%s", part, got)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("versionStringLong() should end with a newline")
	}
}

func TestFixedPaths(t *testing.T) {
	if sourcePath != "json-viewer.png" {
		t.Errorf("sourcePath = %q, want json-viewer.png", sourcePath)
	}
	if !strings.Contains(outputDir, "src-tauri") {
		t.Errorf("outputDir = %q, want it under src-tauri", outputDir)
	}
}
