// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/user/h5tomp4/pkg/framestack"
	"github.com/user/h5tomp4/pkg/pipeline"
	"github.com/user/h5tomp4/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	InputPath string
	Dataset   string

	// Output
	OutputPath string

	// Encoding
	Codec   string
	FPS     int
	Quality int
	Width   int // 0 = source width
	Height  int // 0 = source height
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	enc := pipeline.DefaultEncodeInput()
	return Config{
		Dataset: "frames",
		Codec:   enc.Codec,
		FPS:     enc.FPS,
		Quality: enc.Quality,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	loadStage      pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult]
	normalizeStage pipeline.Stage[pipeline.NormalizeInput, pipeline.NormalizeResult]
	encodeStage    pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	loadStage pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult],
	normalizeStage pipeline.Stage[pipeline.NormalizeInput, pipeline.NormalizeResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		loadStage:      loadStage,
		normalizeStage: normalizeStage,
		encodeStage:    encodeStage,
		logger:         logger,
	}
}

// Run executes load, normalize and encode in order. Nothing is written to
// the output path unless loading and normalization succeed.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Converting %s (dataset '%s')...", config.InputPath, config.Dataset)

	// 1. Load
	loaded, err := o.loadStage.Execute(ctx, pipeline.LoadInput{
		Path:    config.InputPath,
		Dataset: config.Dataset,
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("load stage: %w", err)
	}

	// 2. Normalize
	normalized, err := o.normalizeStage.Execute(ctx, pipeline.NormalizeInput{Stack: loaded.Stack})
	if err != nil {
		return RunResult{}, fmt.Errorf("normalize stage: %w", err)
	}

	// 3. Encode
	encoded, err := o.encodeStage.Execute(ctx, o.buildEncodeInput(config, normalized.Stack))
	if err != nil {
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}

	o.logger.Info("Conversion completed")

	result := RunResult{
		InputPath:    config.InputPath,
		Dataset:      config.Dataset,
		InputShape:   normalized.InputShape,
		OutputShape:  normalized.Stack.Shape,
		OutputPath:   config.OutputPath,
		Codec:        config.Codec,
		FPS:          config.FPS,
		Quality:      config.Quality,
		FrameCount:   encoded.FramesWritten,
		SourceWidth:  normalized.Stack.Width(),
		SourceHeight: normalized.Stack.Height(),
		Width:        encoded.Width,
		Height:       encoded.Height,
		DurationMs:   encoded.DurationMs,
		FileSize:     encoded.FileSize,
	}

	return result, nil
}

func (o *Orchestrator) buildEncodeInput(config Config, stack framestack.Stack) pipeline.EncodeInput {
	return pipeline.EncodeInput{
		Stack:      stack,
		OutputPath: config.OutputPath,
		Codec:      config.Codec,
		FPS:        config.FPS,
		Quality:    config.Quality,
		Width:      config.Width,
		Height:     config.Height,
	}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Input information
	InputPath  string
	Dataset    string
	InputShape []int

	// Normalized stack
	OutputShape  []int
	SourceWidth  int
	SourceHeight int

	// Video information
	OutputPath string
	Codec      string
	FPS        int
	Quality    int
	FrameCount int
	Width      int
	Height     int
	DurationMs int
	FileSize   int64
}
