// Package config provides configuration for the solitaire tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/solitaire-go/internal/errors"
)

// OutputMode selects how a found solution is presented.
type OutputMode int

const (
	Text   OutputMode = iota // Board and move narration on the output stream
	Images                   // One PNG per solution step
	GIF                      // A single animated GIF
)

// String returns the mode's command-line name.
func (m OutputMode) String() string {
	names := []string{"text", "images", "gif"}
	if int(m) < len(names) {
		return names[m]
	}
	return "unknown"
}

// ParseMode converts a command-line mode name to an OutputMode.
func ParseMode(name string) (OutputMode, error) {
	switch name {
	case "text":
		return Text, nil
	case "images":
		return Images, nil
	case "gif":
		return GIF, nil
	default:
		return Text, fmt.Errorf("unknown mode %q: %w", name, errors.ErrInvalidConfig)
	}
}

// Config holds all program configuration.
type Config struct {
	// Solution presentation
	Mode      OutputMode
	OutputDir string // Folder for image and GIF output; must exist

	// Image rendering
	TileSize   int // Tile edge length in pixels
	FrameDelay int // GIF frame delay in 1/100ths of a second
	Workers    int // Goroutines used for frame rendering

	// Verbosity: 0=result only, 1=summary, 2=search progress
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig returns a Config with the default settings.
func NewConfig() *Config {
	return &Config{
		Mode:       Text,
		OutputDir:  "solutions",
		TileSize:   60,
		FrameDelay: 50,
		Workers:    4,
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration for usable values. For the image and
// GIF modes the output folder must already exist.
func (c *Config) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size %d: %w", c.TileSize, errors.ErrInvalidConfig)
	}
	if c.FrameDelay <= 0 {
		return fmt.Errorf("frame delay %d: %w", c.FrameDelay, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count %d: %w", c.Workers, errors.ErrInvalidConfig)
	}

	if c.Mode == Images || c.Mode == GIF {
		info, err := os.Stat(c.OutputDir)
		if err != nil {
			return fmt.Errorf("output folder %q does not exist: %w", c.OutputDir, errors.ErrInvalidConfig)
		}
		if !info.IsDir() {
			return fmt.Errorf("output path %q is not a folder: %w", c.OutputDir, errors.ErrInvalidConfig)
		}
	}

	return nil
}
