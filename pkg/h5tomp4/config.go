// Package h5tomp4 provides a high-level API for converting HDF5 frame
// stacks into MP4 videos.
package h5tomp4

import (
	"path/filepath"
	"strings"

	"github.com/user/h5tomp4/pkg/config"
	"github.com/user/h5tomp4/pkg/orchestrator"
	"github.com/user/h5tomp4/pkg/ports"
)

// QualityPreset represents a video quality preset name.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
)

// Quantizer returns the mpeg4 quantizer for the preset (lower is better).
func (p QualityPreset) Quantizer() int {
	switch p {
	case QualityLow:
		return 10
	case QualityMedium:
		return 5
	default: // high
		return 2
	}
}

// Config represents the configuration of one conversion.
type Config struct {
	Dataset string // Dataset name inside the container
	FPS     int    // Frames per second (min: 1)
	Quality int    // mpeg4 quantizer 1-31, 0 = encoder default
	Width   int    // Output width, 0 = source width
	Height  int    // Output height, 0 = source height
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return NewConfigBuilderFrom(config.Defaults())
}

// NewConfigBuilderFrom creates a ConfigBuilder seeded from a loaded
// configuration file.
func NewConfigBuilderFrom(file config.Config) *ConfigBuilder {
	return &ConfigBuilder{
		config: Config{
			Dataset: file.Dataset,
			FPS:     file.FPS,
			Quality: file.Quality,
			Width:   file.Width,
			Height:  file.Height,
		},
	}
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	if cfg.Dataset == "" {
		cfg.Dataset = "frames"
	}

	// Enforce the mpeg4 quantizer range
	if cfg.Quality < 0 {
		cfg.Quality = 0
	}
	if cfg.Quality > 31 {
		cfg.Quality = 31
	}

	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.Height < 0 {
		cfg.Height = 0
	}

	return cfg
}

// WithDataset sets the dataset name to read.
func (b *ConfigBuilder) WithDataset(name string) *ConfigBuilder {
	b.config.Dataset = name
	return b
}

// WithFPS sets the frame rate. Non-positive values are rejected when the
// writer is opened.
func (b *ConfigBuilder) WithFPS(fps int) *ConfigBuilder {
	b.config.FPS = fps
	return b
}

// WithQuality sets the mpeg4 quantizer.
// Values outside 0-31 will be clamped.
func (b *ConfigBuilder) WithQuality(q int) *ConfigBuilder {
	b.config.Quality = q
	return b
}

// WithQualityPreset sets the quantizer from a named preset.
func (b *ConfigBuilder) WithQualityPreset(preset QualityPreset) *ConfigBuilder {
	b.config.Quality = preset.Quantizer()
	return b
}

// WithSize sets the output frame size. Zero keeps the source size.
func (b *ConfigBuilder) WithSize(width, height int) *ConfigBuilder {
	b.config.Width = width
	b.config.Height = height
	return b
}

// DefaultOutputPath returns the input path with its extension replaced by
// .mp4, e.g. x/y.h5 becomes x/y.mp4. A name that is only a dotfile such as
// x/.h5, or ends in a bare dot, has no extension and gets .mp4 appended.
func DefaultOutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	if ext == base || ext == "." {
		ext = ""
	}
	return strings.TrimSuffix(inputPath, ext) + ".mp4"
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(inputPath, outputPath string) orchestrator.Config {
	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath)
	}
	return orchestrator.Config{
		InputPath:  inputPath,
		Dataset:    c.Dataset,
		OutputPath: outputPath,
		Codec:      ports.CodecMP4V,
		FPS:        c.FPS,
		Quality:    c.Quality,
		Width:      c.Width,
		Height:     c.Height,
	}
}
