package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Build-time variables injected via ldflags.
var (
	Version        = "v0.0.0"
	CommitHash     = "dev"
	BuildTimestamp = "1970-01-01T00:00:00Z"
	Builder        = "unknown"
	GithubRepo     = "sathishkannan162/logo-formatter"
)

// Paths are fixed relative to the working directory: the tool runs from its
// own directory inside a json-viewer checkout and writes into the app's icon
// directory. There are no flags or env vars to point it elsewhere.
var (
	sourcePath = "json-viewer.png"
	outputDir  = filepath.Join("..", "src-tauri", "icons")
)

func versionString() string {
	return fmt.Sprintf("logo-formatter %s-%s", Version, CommitHash)
}

func versionStringLong() string {
	return fmt.Sprintf("logo-formatter %s-%s (built %s using %s)\nhttps://github.com/%s\n",
		Version, CommitHash, BuildTimestamp, Builder, GithubRepo)
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[logo-formatter] ")

	showVersion := flag.Bool("version", false, "show version and exit")
	doUpdate := flag.Bool("update", false, "check and update to latest release")
	placeholder := flag.Bool("placeholder", false, "write a placeholder source logo and exit")
	flag.Usage = func() {
		fmt.Print(versionStringLong())
		fmt.Fprintf(os.Stderr, "\nUsage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Print(versionStringLong())
		return
	}

	if *doUpdate {
		selfUpdate()
		return
	}

	if *placeholder {
		if err := writePlaceholder(sourcePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", sourcePath)
		return
	}

	fmt.Println(versionString())
	fmt.Printf("Source: %s\n", sourcePath)
	fmt.Printf("Output: %s\n", outputDir)

	f := NewFormatter(defaultCatalog(), platformBundler())
	if err := f.Run(sourcePath, outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
