// Package encode implements the video encoding stage.
package encode

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/user/h5tomp4/pkg/framestack"
	"github.com/user/h5tomp4/pkg/pipeline"
	"github.com/user/h5tomp4/pkg/ports"
)

// Stage writes a normalized stack to a video file.
type Stage struct {
	writer   ports.VideoWriter
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(writer ports.VideoWriter, fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		writer:   writer,
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute writes every frame in order. The writer is closed exactly once
// on every path after a successful Open; frames already written stay in
// the output file when a later frame fails.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (result pipeline.EncodeResult, err error) {
	stack := input.Stack
	if stack.Frames() == 0 {
		return result, fmt.Errorf("no frames to encode")
	}
	if c := stack.ChannelCount(); len(stack.Shape) != 4 || c != framestack.Channels {
		return result, fmt.Errorf("%w: expected 3-channel frames, got c=%d",
			ports.ErrInvalidChannelCount, c)
	}

	if input.FPS <= 0 {
		return result, fmt.Errorf("%w: fps must be positive, got %d", ports.ErrOpenFailure, input.FPS)
	}

	scaleW, scaleH := ScaleSize(stack.Width(), stack.Height(), input.Width, input.Height)
	width, height := TargetSize(scaleW, scaleH)

	if dir := filepath.Dir(input.OutputPath); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir); err != nil {
			return result, fmt.Errorf("%w: create %s: %w", ports.ErrOpenFailure, dir, err)
		}
	}

	opts := ports.WriterOptions{
		Width:   width,
		Height:  height,
		FPS:     input.FPS,
		Codec:   input.Codec,
		Quality: input.Quality,
	}

	s.logger.Debug("Encoding %d frames at %d fps (%dx%d, %s)", stack.Frames(), input.FPS, width, height, input.Codec)

	if err := s.writer.Open(input.OutputPath, opts); err != nil {
		return result, err
	}
	defer func() {
		if cerr := s.writer.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close writer: %w", cerr))
			return
		}
		if err != nil {
			return
		}
		size, serr := s.fs.Size(input.OutputPath)
		if serr != nil {
			s.logger.Warn("Failed to stat output: %s", serr)
			return
		}
		result.FileSize = size
		s.logger.Debug("Video written: %d bytes", size)
	}()

	for i := 0; i < stack.Frames(); i++ {
		select {
		case <-ctx.Done():
			s.logger.Warn("Encoding cancelled after %d frames", result.FramesWritten)
			return result, ctx.Err()
		default:
		}

		frame := stack.Frame(i)
		if frame.Width != scaleW || frame.Height != scaleH {
			if i == 0 {
				s.logger.Debug("Scaling frames from %dx%d to %dx%d", frame.Width, frame.Height, scaleW, scaleH)
			}
			frame = framestack.FromImage(s.renderer.ResizeImage(frame.Image(), scaleW, scaleH))
		}
		if frame.Width != width || frame.Height != height {
			if i == 0 {
				s.logger.Debug("Fitting frames from %dx%d to %dx%d", frame.Width, frame.Height, width, height)
			}
			frame = frame.Fit(width, height)
		}

		if err := s.writer.WriteFrame(frame.Pix); err != nil {
			return result, fmt.Errorf("write frame %d: %w", i, err)
		}
		result.FramesWritten++
	}

	result.Width = width
	result.Height = height
	result.DurationMs = result.FramesWritten * 1000 / input.FPS

	return result, nil
}

// ScaleSize returns the size frames are scaled to before encoding: the
// requested width and height, or the source size where none was requested.
func ScaleSize(srcW, srcH, w, h int) (int, int) {
	if w <= 0 {
		w = srcW
	}
	if h <= 0 {
		h = srcH
	}
	return w, h
}

// TargetSize returns the frame size the video is written at. 4:2:0 chroma
// subsampling needs even dimensions, so an odd size drops its last column
// or row. A dimension of 1 is padded to 2 instead.
func TargetSize(w, h int) (int, int) {
	return even(w), even(h)
}

func even(n int) int {
	if n < 2 {
		return 2
	}
	return n &^ 1
}
