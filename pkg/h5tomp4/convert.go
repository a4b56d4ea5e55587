package h5tomp4

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/h5tomp4/pkg/adapters/ffmpegbin"
	"github.com/user/h5tomp4/pkg/adapters/filesink"
	"github.com/user/h5tomp4/pkg/adapters/ggrenderer"
	"github.com/user/h5tomp4/pkg/adapters/hdf5source"
	"github.com/user/h5tomp4/pkg/adapters/logger"
	"github.com/user/h5tomp4/pkg/adapters/mp4probe"
	"github.com/user/h5tomp4/pkg/adapters/mpeg4writer"
	"github.com/user/h5tomp4/pkg/adapters/nullsink"
	"github.com/user/h5tomp4/pkg/adapters/osfilesystem"
	"github.com/user/h5tomp4/pkg/config"
	"github.com/user/h5tomp4/pkg/orchestrator"
	"github.com/user/h5tomp4/pkg/ports"
	"github.com/user/h5tomp4/pkg/stages/encode"
	"github.com/user/h5tomp4/pkg/stages/load"
	"github.com/user/h5tomp4/pkg/stages/normalize"
)

// ErrVerification is returned when a written video does not match what
// was encoded.
var ErrVerification = errors.New("output verification failed")

// Options selects how the conversion pipeline is wired.
type Options struct {
	Logger     ports.Logger // nil = no logging
	FFmpegPath string       // Explicit ffmpeg binary, empty = auto-detect
	Debug      bool         // Save debug frames
	DebugDir   string       // Directory for debug output, empty = config default
}

// NewOrchestrator wires the production adapters into an orchestrator.
func NewOrchestrator(opts Options) (*orchestrator.Orchestrator, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoop()
	}

	if opts.FFmpegPath != "" {
		ffmpegbin.SetPath(opts.FFmpegPath)
	}

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if opts.Debug {
		if opts.DebugDir == "" {
			opts.DebugDir = config.Defaults().DebugDir
		}
		if err := fs.MkdirAll(opts.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(opts.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	return orchestrator.New(
		load.NewStage(hdf5source.New(), fs, log),
		normalize.NewStage(renderer, sink, log),
		encode.NewStage(mpeg4writer.New(), fs, renderer, log),
		log,
	), nil
}

// Convert reads the dataset from inputPath and writes it to outputPath.
// An empty outputPath selects DefaultOutputPath(inputPath).
func Convert(ctx context.Context, inputPath, outputPath string, cfg Config, opts Options) (orchestrator.RunResult, error) {
	orch, err := NewOrchestrator(opts)
	if err != nil {
		return orchestrator.RunResult{}, err
	}
	return orch.Run(ctx, cfg.ToOrchestratorConfig(inputPath, outputPath))
}

// Verify probes a written video and checks it against the run result.
func Verify(prober ports.VideoProber, result orchestrator.RunResult) (ports.VideoInfo, error) {
	info, err := prober.Probe(result.OutputPath)
	if err != nil {
		return info, fmt.Errorf("%w: %w", ErrVerification, err)
	}
	if info.Codec != ports.CodecMP4V {
		return info, fmt.Errorf("%w: codec %q, want %q", ErrVerification, info.Codec, ports.CodecMP4V)
	}
	if info.Width != result.Width || info.Height != result.Height {
		return info, fmt.Errorf("%w: size %dx%d, want %dx%d",
			ErrVerification, info.Width, info.Height, result.Width, result.Height)
	}
	if info.FrameCount != result.FrameCount {
		return info, fmt.Errorf("%w: %d frames, want %d", ErrVerification, info.FrameCount, result.FrameCount)
	}
	return info, nil
}

// NewProber returns the container prober used by Verify.
func NewProber() ports.VideoProber {
	return mp4probe.New()
}
