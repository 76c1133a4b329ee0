// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/solitaire-go/internal/config"
)

var (
	// Output options
	mode      = flag.String("mode", "text", "Solution output: text, images, gif")
	outputDir = flag.String("d", "solutions", "Output folder for images and gif (must exist)")

	// Rendering options
	tileSize   = flag.Int("tile", 60, "Tile edge length in pixels")
	frameDelay = flag.Int("delay", 50, "GIF frame delay in 1/100ths of a second")
	workers    = flag.Int("workers", runtime.NumCPU(), "Goroutines used for frame rendering")

	// Diagnostics
	verbosity = flag.Int("v", 1, "Verbosity: 0=result only, 1=summary, 2=search progress")
	logFile   = flag.String("log", "", "Write log output to this file instead of stderr")

	// Miscellaneous
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("help", false, "Show usage information")
)

// applyFlags transfers the parsed command-line flags into the configuration
// and exits with code 1 if any value is unusable.
func applyFlags(cfg *config.Config) {
	m, err := config.ParseMode(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Mode = m
	cfg.OutputDir = *outputDir
	cfg.TileSize = *tileSize
	cfg.FrameDelay = *frameDelay
	cfg.Workers = *workers
	cfg.Verbosity = *verbosity

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger builds the logger from the verbosity and log-file flags.
func setupLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cfg.LogFile)

	switch {
	case cfg.Verbosity <= 0:
		log.SetLevel(logrus.ErrorLevel)
	case cfg.Verbosity == 1:
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetLevel(logrus.DebugLevel)
	}

	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
		log.SetOutput(file)
	}

	return log
}
