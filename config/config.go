// Package config loads the lantern runtime configuration from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything the demo host needs to build a stage.
type Config struct {
	Window WindowConfig `yaml:"window"`

	// Timing
	TicksPerSecond int `yaml:"ticks_per_second"`

	// Diagnostics
	Debug         bool   `yaml:"debug"`
	LogLevel      string `yaml:"log_level"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	TestScript    string `yaml:"test_script"`

	Panorama PanoramaConfig `yaml:"panorama"`

	// Input
	HandsOnAtStart bool `yaml:"hands_on_at_start"`
	HandlesNulls   bool `yaml:"handles_nulls"`

	// Resources
	ResourceDir string `yaml:"resource_dir"`
	Palette     string `yaml:"palette"`
}

// WindowConfig describes the host window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
}

// PanoramaConfig describes panorama geometry and panning.
type PanoramaConfig struct {
	BufferWidth int     `yaml:"buffer_width"` // screen-vertical axis
	PanExtent   int     `yaml:"pan_extent"`   // 360° axis
	ViewWidth   int     `yaml:"view_width"`
	EdgeZone    int     `yaml:"edge_zone"`
	EdgeSpeed   float64 `yaml:"edge_speed"`
	ErasePolicy string  `yaml:"erase_policy"` // keep-drawn | reset-drawn
}

// Default returns the configuration with sensible defaults.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "lantern",
			Width:  640,
			Height: 512,
			Scale:  1,
		},
		TicksPerSecond: 60,
		LogLevel:       "info",
		ScreenshotDir:  "screenshots",
		Panorama: PanoramaConfig{
			BufferWidth: 512,
			PanExtent:   2048,
			ViewWidth:   640,
			EdgeZone:    16,
			EdgeSpeed:   8,
			ErasePolicy: "keep-drawn",
		},
		HandsOnAtStart: true,
		ResourceDir:    "resources",
		Palette:        "dusk",
	}
}

// Load loads config from a YAML file. If the file doesn't exist, returns
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would break the panorama math.
func (c Config) Validate() error {
	switch {
	case c.TicksPerSecond <= 0:
		return fmt.Errorf("ticks_per_second must be positive, got %d", c.TicksPerSecond)
	case c.Panorama.BufferWidth <= 0:
		return fmt.Errorf("panorama.buffer_width must be positive, got %d", c.Panorama.BufferWidth)
	case c.Panorama.PanExtent <= 0:
		return fmt.Errorf("panorama.pan_extent must be positive, got %d", c.Panorama.PanExtent)
	case c.Panorama.ViewWidth <= 0 || c.Panorama.ViewWidth > c.Panorama.PanExtent:
		return fmt.Errorf("panorama.view_width must be in (0, %d], got %d", c.Panorama.PanExtent, c.Panorama.ViewWidth)
	}
	switch c.Panorama.ErasePolicy {
	case "", "keep-drawn", "reset-drawn":
	default:
		return fmt.Errorf("panorama.erase_policy %q is not keep-drawn or reset-drawn", c.Panorama.ErasePolicy)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
