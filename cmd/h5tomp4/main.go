// Package main provides the CLI entry point for h5tomp4.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/h5tomp4/pkg/adapters/hdf5source"
	"github.com/user/h5tomp4/pkg/adapters/logger"
	"github.com/user/h5tomp4/pkg/adapters/mp4probe"
	"github.com/user/h5tomp4/pkg/adapters/osfilesystem"
	"github.com/user/h5tomp4/pkg/config"
	"github.com/user/h5tomp4/pkg/framestack"
	"github.com/user/h5tomp4/pkg/h5tomp4"
	"github.com/user/h5tomp4/pkg/ports"
	"github.com/user/h5tomp4/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert an HDF5 frame dataset into an MP4 video."`
	Inspect InspectCmd `cmd:"" help:"List the datasets of an HDF5 file."`
	Probe   ProbeCmd   `cmd:"" help:"Show the video track of an MP4 file."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// ConvertCmd defines the convert subcommand.
type ConvertCmd struct {
	// Arguments
	Input  string `arg:"" help:"Input HDF5 file."`
	Output string `arg:"" optional:"" help:"Output MP4 path (default: input with .mp4 extension)."`

	// Configuration file
	Config string `short:"c" type:"existingfile" help:"YAML configuration file."`

	// Input options (override config)
	Dataset *string `short:"d" help:"Dataset name inside the HDF5 file (default: frames)."`

	// Encoding options (override config)
	FPS           *int    `short:"r" name:"fps" help:"Frames per second (default: 20)."`
	Quality       *int    `short:"q" help:"mpeg4 quantizer (1-31, lower is better)."`
	QualityPreset *string `help:"Quality preset (low, medium, high)."`
	Width         *int    `short:"W" help:"Output video width (default: source width)."`
	Height        *int    `short:"H" help:"Output video height (default: source height)."`

	// Tools
	FFmpegPath string `name:"ffmpeg-path" help:"Path to ffmpeg executable (falls back to FFMPEG_PATH env, then PATH)."`

	// Output checks
	Verify  bool   `help:"Probe the written video and check codec, size and frame count."`
	Summary string `short:"s" help:"Output conversion summary to file (Markdown format)."`

	// Debug options
	Debug    bool    `short:"D" help:"Enable debug output."`
	DebugDir *string `help:"Directory for debug output (default: ./debug)."`

	// Logging options
	LogLevel *string `short:"l" help:"Log level (debug, info, warn, error)."`
	Quiet    bool    `short:"Q" help:"Suppress all log output."`
}

// InspectCmd defines the inspect subcommand.
type InspectCmd struct {
	Input string `arg:"" help:"Input HDF5 file."`
}

// ProbeCmd defines the probe subcommand.
type ProbeCmd struct {
	Video string `arg:"" help:"MP4 file to probe."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("h5tomp4"),
		kong.Description(l10n.T("Convert HDF5 frame datasets into MP4 videos.")),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Validate checks enumerated flags. Kong calls it after parsing.
func (cmd *ConvertCmd) Validate() error {
	if cmd.QualityPreset != nil {
		switch h5tomp4.QualityPreset(*cmd.QualityPreset) {
		case h5tomp4.QualityLow, h5tomp4.QualityMedium, h5tomp4.QualityHigh:
		default:
			return fmt.Errorf("--quality-preset must be one of low, medium, high, got %q", *cmd.QualityPreset)
		}
	}
	if cmd.LogLevel != nil {
		switch *cmd.LogLevel {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("--log-level must be one of debug, info, warn, error, got %q", *cmd.LogLevel)
		}
	}
	return nil
}

// Run executes the convert command.
func (cmd *ConvertCmd) Run() error {
	file, err := cmd.loadConfig()
	if err != nil {
		return err
	}

	cfg := cmd.buildConfig(file)

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		level := file.LogLevel
		if cmd.LogLevel != nil {
			level = *cmd.LogLevel
		}
		log = logger.NewConsole(ports.ParseLogLevel(level))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	opts := h5tomp4.Options{
		Logger:     log,
		FFmpegPath: file.FFmpegPath,
		Debug:      cmd.Debug || file.Debug,
		DebugDir:   file.DebugDir,
	}
	if cmd.FFmpegPath != "" {
		opts.FFmpegPath = cmd.FFmpegPath
	}
	if cmd.DebugDir != nil {
		opts.DebugDir = *cmd.DebugDir
	}

	orch, err := h5tomp4.NewOrchestrator(opts)
	if err != nil {
		return err
	}

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig(cmd.Input, cmd.Output))
	if err != nil {
		log.Error("Failed to convert: %s", err)
		return err
	}

	verified := false
	if cmd.Verify || file.Verify {
		info, err := h5tomp4.Verify(mp4probe.New(), result)
		if err != nil {
			log.Error("Verification failed: %s", err)
			return err
		}
		log.Info("Verified: %s %dx%d, %d frames, %d ms",
			info.Codec, info.Width, info.Height, info.FrameCount, info.DurationMs)
		verified = true
	}

	if cmd.Summary != "" {
		summary := summarizer.FromRunResult(result).WithVerified(verified).Build()
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), osfilesystem.New())
		if err := writer.Write(cmd.Summary, summary); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", cmd.Summary)
		}
	}

	fmt.Println(l10n.F("Wrote MP4 to: %s", result.OutputPath))
	return nil
}

// loadConfig reads the configuration file, or returns defaults when none
// was given.
func (cmd *ConvertCmd) loadConfig() (config.Config, error) {
	if cmd.Config == "" {
		return config.Defaults(), nil
	}
	file, err := config.LoadFromFile(cmd.Config)
	if err != nil {
		return file, fmt.Errorf("load config: %w", err)
	}
	return file, nil
}

// buildConfig creates a Config from the configuration file and CLI overrides.
func (cmd *ConvertCmd) buildConfig(file config.Config) h5tomp4.Config {
	builder := h5tomp4.NewConfigBuilderFrom(file)

	if cmd.Dataset != nil {
		builder.WithDataset(*cmd.Dataset)
	}
	if cmd.FPS != nil {
		builder.WithFPS(*cmd.FPS)
	}
	if cmd.QualityPreset != nil {
		builder.WithQualityPreset(h5tomp4.QualityPreset(*cmd.QualityPreset))
	}
	// An explicit quantizer wins over the preset
	if cmd.Quality != nil {
		builder.WithQuality(*cmd.Quality)
	}

	width, height := file.Width, file.Height
	if cmd.Width != nil {
		width = *cmd.Width
	}
	if cmd.Height != nil {
		height = *cmd.Height
	}
	builder.WithSize(width, height)

	return builder.Build()
}

// Run executes the inspect command.
func (cmd *InspectCmd) Run() error {
	ok, err := osfilesystem.New().IsFile(cmd.Input)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ports.ErrNotFound, cmd.Input)
	}

	datasets, err := hdf5source.New().List(cmd.Input)
	if err != nil {
		return err
	}

	for _, ds := range datasets {
		fmt.Printf("%-24s %-20s %s\n", ds.Name, framestack.ShapeString(ds.Shape), ds.Type)
	}
	return nil
}

// Run executes the probe command.
func (cmd *ProbeCmd) Run() error {
	info, err := mp4probe.New().Probe(cmd.Video)
	if err != nil {
		return err
	}

	fmt.Println(l10n.F("Codec: %s", info.Codec))
	fmt.Println(l10n.F("Size: %dx%d", info.Width, info.Height))
	fmt.Println(l10n.F("Frames: %d", info.FrameCount))
	fmt.Println(l10n.F("Duration: %d ms (timescale %d)", info.DurationMs, info.Timescale))
	if info.Fragmented {
		fmt.Println(l10n.T("Layout: fragmented"))
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("h5tomp4 version %s", version))
	return nil
}
