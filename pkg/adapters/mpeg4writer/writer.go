// Package mpeg4writer writes BGR frames into an MP4 file with the mp4v
// (MPEG-4 Part 2) codec by piping raw video into an ffmpeg process.
package mpeg4writer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/user/h5tomp4/pkg/adapters/ffmpegbin"
	"github.com/user/h5tomp4/pkg/ports"
)

// DefaultQuality is the mpeg4 quantizer used when WriterOptions.Quality is 0.
const DefaultQuality = 2

// Writer implements ports.VideoWriter using an ffmpeg subprocess that
// writes straight to the output path.
type Writer struct {
	ffmpegPath string
	path       string
	opts       ports.WriterOptions

	cmd        *exec.Cmd
	stdin      io.WriteCloser
	stderr     bytes.Buffer
	frameSize  int
	frameCount int
	open       bool
}

// New creates a new Writer.
func New() *Writer {
	return &Writer{}
}

// Open validates the options, makes sure the output path is writable and
// starts ffmpeg. Every failure wraps ports.ErrOpenFailure.
func (w *Writer) Open(path string, opts ports.WriterOptions) error {
	if w.open {
		return fmt.Errorf("%w: %w", ports.ErrOpenFailure, ErrAlreadyOpen)
	}
	if opts.Codec != ports.CodecMP4V {
		return fmt.Errorf("%w for %s: %w %q", ports.ErrOpenFailure, path, ErrUnsupportedCodec, opts.Codec)
	}
	if opts.FPS <= 0 {
		return fmt.Errorf("%w for %s: frame rate must be positive, got %d", ports.ErrOpenFailure, path, opts.FPS)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("%w for %s: invalid frame size %dx%d", ports.ErrOpenFailure, path, opts.Width, opts.Height)
	}

	ffmpegPath, err := ffmpegbin.Find()
	if err != nil {
		return fmt.Errorf("%w for %s: %w", ports.ErrOpenFailure, path, err)
	}

	// ffmpeg only reports an unwritable output once it has received input,
	// so probe the path up front.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w for %s: %w", ports.ErrOpenFailure, path, err)
	}
	f.Close()

	w.ffmpegPath = ffmpegPath
	w.path = path
	w.opts = opts
	w.frameSize = opts.Width * opts.Height * 3
	w.frameCount = 0
	w.stderr.Reset()

	w.cmd = exec.Command(w.ffmpegPath, buildArgs(path, opts)...)
	w.cmd.Stderr = &w.stderr

	stdin, err := w.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%w for %s: stdin pipe: %w", ports.ErrOpenFailure, path, err)
	}
	w.stdin = stdin

	if err := w.cmd.Start(); err != nil {
		return fmt.Errorf("%w for %s: start ffmpeg: %w", ports.ErrOpenFailure, path, err)
	}

	w.open = true
	return nil
}

// WriteFrame pipes one BGR frame to ffmpeg.
func (w *Writer) WriteFrame(bgr []byte) error {
	if !w.open {
		return ErrNotOpen
	}
	if len(bgr) != w.frameSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(bgr), w.frameSize)
	}

	if _, err := w.stdin.Write(bgr); err != nil {
		return fmt.Errorf("write frame %d: %w%s", w.frameCount, err, w.stderrTail())
	}

	w.frameCount++
	return nil
}

// Close ends the input stream and waits for ffmpeg to finalize the file.
// Frames written before a failure stay in the output.
func (w *Writer) Close() error {
	if !w.open {
		return nil
	}
	w.open = false

	w.stdin.Close()
	w.stdin = nil

	err := w.cmd.Wait()
	w.cmd = nil
	if err != nil {
		return fmt.Errorf("ffmpeg encoding failed: %w%s", err, w.stderrTail())
	}
	return nil
}

// FrameCount returns the number of frames written since Open.
func (w *Writer) FrameCount() int {
	return w.frameCount
}

func (w *Writer) stderrTail() string {
	msg := strings.TrimSpace(w.stderr.String())
	if msg == "" {
		return ""
	}
	return "\nstderr: " + msg
}

func buildArgs(path string, opts ports.WriterOptions) []string {
	quality := opts.Quality
	if quality <= 0 || quality > 31 {
		quality = DefaultQuality
	}

	return []string{
		"-y",
		"-loglevel", "error",
		"-f", "rawvideo",
		"-pix_fmt", "bgr24",
		"-s", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"-r", fmt.Sprintf("%d", opts.FPS),
		"-i", "pipe:0",
		"-an",
		"-c:v", "mpeg4",
		"-tag:v", opts.Codec,
		"-q:v", fmt.Sprintf("%d", quality),
		"-pix_fmt", "yuv420p",
		path,
	}
}

// Ensure Writer implements ports.VideoWriter
var _ ports.VideoWriter = (*Writer)(nil)
