// Package main is the entry point for the editcore demo editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("editcore %s (%s)\n", version, commit)
		return 0
	}

	var filePath string
	if flag.NArg() > 0 {
		filePath = flag.Arg(0)
	}

	app, err := newApp(configPath, filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer app.Shutdown()

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "editcore.toml"
	}
	return filepath.Join(dir, "editcore", "editcore.toml")
}
