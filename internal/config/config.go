// Package config handles isovis configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all isovis settings.
type Config struct {
	Extract  ExtractConfig  `yaml:"extract"`
	Preview  PreviewConfig  `yaml:"preview"`
	Upsample UpsampleConfig `yaml:"upsample"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ExtractConfig selects the volume and iso value of an extraction.
type ExtractConfig struct {
	Source string `yaml:"source"` // hydrogen, sphere or box
	Size   int    `yaml:"size"`   // samples per axis
	// Iso is the absolute iso value. When unset the middle of the
	// volume's value range is used.
	Iso     *float64 `yaml:"iso,omitempty"`
	// IsoStep moves the default iso value by this many slider
	// increments of the value range. Ignored when Iso is set.
	IsoStep int      `yaml:"iso_step"`
	STL     string   `yaml:"stl"`
	PNG     string   `yaml:"png"`
}

// PreviewConfig holds preview rasterization settings.
type PreviewConfig struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	Supersample int        `yaml:"supersample"`
	FOV         float64    `yaml:"fov"`
	Eye         [3]float64 `yaml:"eye"`
	Color       string     `yaml:"color"`
	Background  string     `yaml:"background"`
}

// UpsampleConfig holds image upsampling settings.
type UpsampleConfig struct {
	Method   string   `yaml:"method"`
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	ColorMap []string `yaml:"colormap"` // hex colors, low to high
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Extract: ExtractConfig{
			Source: "hydrogen",
			Size:   64,
		},
		Preview: PreviewConfig{
			Width:       800,
			Height:      600,
			Supersample: 2,
			FOV:         30,
			Eye:         [3]float64{3, 2, 4},
			Color:       "#468966",
			Background:  "#FFF8E3",
		},
		Upsample: UpsampleConfig{
			Method:   "bilinear",
			Width:    512,
			Height:   512,
			ColorMap: []string{"#000004", "#b73779", "#fcfdbf"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first invalid setting in c.
func (c *Config) Validate() error {
	switch c.Extract.Source {
	case "hydrogen", "sphere", "box":
	default:
		return fmt.Errorf("unknown volume source %q", c.Extract.Source)
	}
	if c.Extract.Size < 2 {
		return fmt.Errorf("volume size must be 2 or larger, got %d", c.Extract.Size)
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 || c.Preview.Supersample <= 0 {
		return errors.New("preview dimensions must be positive")
	}
	if c.Preview.FOV <= 0 || c.Preview.FOV >= 180 {
		return fmt.Errorf("preview field of view out of range: %g", c.Preview.FOV)
	}
	if c.Upsample.Width <= 0 || c.Upsample.Height <= 0 {
		return errors.New("upsample dimensions must be positive")
	}
	return nil
}
