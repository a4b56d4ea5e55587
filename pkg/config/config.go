// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the configuration file of h5tomp4.
type Config struct {
	// Input
	Dataset string `yaml:"dataset"`

	// Encoding
	FPS     int `yaml:"fps"`
	Quality int `yaml:"quality"`
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`

	// Tools
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Output checks
	Verify bool `yaml:"verify"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Dataset:  "frames",
		FPS:      20,
		Quality:  2,
		LogLevel: "info",
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports values no conversion can run with.
func (c Config) Validate() error {
	if c.Dataset == "" {
		return fmt.Errorf("dataset must not be empty")
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Quality < 0 || c.Quality > 31 {
		return fmt.Errorf("quality must be between 0 and 31, got %d", c.Quality)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("width and height must not be negative")
	}
	return nil
}
