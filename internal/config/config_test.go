package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	serrors "github.com/lgbarn/solitaire-go/internal/errors"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		want    OutputMode
		wantErr bool
	}{
		{"text", Text, false},
		{"images", Images, false},
		{"gif", GIF, false},
		{"video", Text, true},
		{"", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.name)
			if tt.wantErr {
				if !errors.Is(err, serrors.ErrInvalidConfig) {
					t.Errorf("ParseMode(%q) error = %v; want ErrInvalidConfig", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v; want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	if got := Images.String(); got != "images" {
		t.Errorf("Images.String() = %q; want %q", got, "images")
	}
	if got := OutputMode(99).String(); got != "unknown" {
		t.Errorf("OutputMode(99).String() = %q; want %q", got, "unknown")
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults error = %v", err)
	}
}

func TestValidate_BadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tile size", func(c *Config) { c.TileSize = 0 }},
		{"negative frame delay", func(c *Config) { c.FrameDelay = -1 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, serrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v; want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidate_OutputDir(t *testing.T) {
	t.Run("missing folder", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Mode = GIF
		cfg.OutputDir = filepath.Join(t.TempDir(), "absent")
		if err := cfg.Validate(); !errors.Is(err, serrors.ErrInvalidConfig) {
			t.Errorf("Validate() error = %v; want ErrInvalidConfig", err)
		}
	})

	t.Run("folder is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg := NewConfig()
		cfg.Mode = Images
		cfg.OutputDir = path
		if err := cfg.Validate(); !errors.Is(err, serrors.ErrInvalidConfig) {
			t.Errorf("Validate() error = %v; want ErrInvalidConfig", err)
		}
	})

	t.Run("existing folder", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Mode = Images
		cfg.OutputDir = t.TempDir()
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("text mode ignores folder", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Mode = Text
		cfg.OutputDir = filepath.Join(t.TempDir(), "absent")
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})
}
