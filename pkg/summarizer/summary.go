// Package summarizer provides summary generation for conversion results.
package summarizer

import (
	"time"

	"github.com/user/h5tomp4/pkg/orchestrator"
)

// Summary contains all data collected during a conversion.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source container
	Input InputInfo

	// Encoding settings
	Settings Settings

	// Video output details
	Video VideoInfo
}

// InputInfo describes the dataset that was read.
type InputInfo struct {
	Path    string
	Dataset string
	Shape   []int
}

// Settings contains the encoding configuration.
type Settings struct {
	Codec   string
	FPS     int
	Quality int
}

// VideoInfo contains information about the output video.
type VideoInfo struct {
	Path         string
	FrameCount   int
	DurationMs   int
	FileSize     int64
	Width        int
	Height       int
	SourceWidth  int
	SourceHeight int

	// Verified is set when the written container was probed and matched.
	Verified bool
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// FromRunResult seeds a Builder with everything a pipeline run reports.
func FromRunResult(r orchestrator.RunResult) *Builder {
	return NewBuilder().
		WithInput(r.InputPath, r.Dataset, r.InputShape).
		WithSettings(Settings{
			Codec:   r.Codec,
			FPS:     r.FPS,
			Quality: r.Quality,
		}).
		WithVideo(VideoInfo{
			Path:         r.OutputPath,
			FrameCount:   r.FrameCount,
			DurationMs:   r.DurationMs,
			FileSize:     r.FileSize,
			Width:        r.Width,
			Height:       r.Height,
			SourceWidth:  r.SourceWidth,
			SourceHeight: r.SourceHeight,
		})
}

// WithInput sets input information.
func (b *Builder) WithInput(path, dataset string, shape []int) *Builder {
	b.summary.Input = InputInfo{
		Path:    path,
		Dataset: dataset,
		Shape:   append([]int(nil), shape...),
	}
	return b
}

// WithSettings sets encoding settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithVideo sets video output information.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = video
	return b
}

// WithVerified marks the output as probed and matching.
func (b *Builder) WithVerified(verified bool) *Builder {
	b.summary.Video.Verified = verified
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
