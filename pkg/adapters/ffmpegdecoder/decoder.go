// Package ffmpegdecoder decodes video files back into RGB frames with an
// ffmpeg subprocess. It is independent of the writer so round trips check
// the real file contents.
package ffmpegdecoder

import (
	"bytes"
	"fmt"
	"image"
	"os/exec"

	"github.com/user/h5tomp4/pkg/adapters/ffmpegbin"
	"github.com/user/h5tomp4/pkg/ports"
)

// Decoder implements ports.VideoDecoder.
// Frame dimensions and timing come from the prober.
type Decoder struct {
	prober ports.VideoProber
}

// New creates a new Decoder.
func New(prober ports.VideoProber) *Decoder {
	return &Decoder{prober: prober}
}

// ReadFrames decodes every frame of the video at path.
func (d *Decoder) ReadFrames(path string) ([]ports.VideoFrame, error) {
	info, err := d.prober.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil, fmt.Errorf("probe %s: invalid frame size %dx%d", path, info.Width, info.Height)
	}

	ffmpegPath, err := ffmpegbin.Find()
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(ffmpegPath,
		"-loglevel", "error",
		"-i", path,
		"-vsync", "0",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"pipe:1",
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg decode failed: %w\nstderr: %s", err, stderr.String())
	}

	frameSize := info.Width * info.Height * 3
	data := stdout.Bytes()
	if len(data)%frameSize != 0 {
		return nil, fmt.Errorf("decoded %d bytes, not a multiple of frame size %d", len(data), frameSize)
	}

	count := len(data) / frameSize
	frameMs := 0
	if info.FrameCount > 0 {
		frameMs = info.DurationMs / info.FrameCount
	}

	frames := make([]ports.VideoFrame, 0, count)
	for i := 0; i < count; i++ {
		frames = append(frames, ports.VideoFrame{
			Image:       toRGBA(data[i*frameSize:(i+1)*frameSize], info.Width, info.Height),
			TimestampMs: i * frameMs,
		})
	}

	return frames, nil
}

func toRGBA(rgb []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(rgb); i, j = i+3, j+4 {
		img.Pix[j] = rgb[i]
		img.Pix[j+1] = rgb[i+1]
		img.Pix[j+2] = rgb[i+2]
		img.Pix[j+3] = 255
	}
	return img
}

// Ensure Decoder implements ports.VideoDecoder
var _ ports.VideoDecoder = (*Decoder)(nil)
