package mp4probe

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/user/h5tomp4/pkg/adapters/ffmpegbin"
	"github.com/user/h5tomp4/pkg/adapters/mpeg4writer"
	"github.com/user/h5tomp4/pkg/ports"
)

func TestProber_InvalidData(t *testing.T) {
	_, err := New().ProbeReader(bytes.NewReader([]byte("definitely not an mp4 file")))
	if err == nil {
		t.Error("expected error for invalid data")
	}
}

func TestProber_MissingFile(t *testing.T) {
	_, err := New().Probe(filepath.Join(t.TempDir(), "missing.mp4"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestProber_WriterOutput(t *testing.T) {
	if !ffmpegbin.IsAvailable() {
		t.Skip("ffmpeg not available")
	}

	path := filepath.Join(t.TempDir(), "out.mp4")
	width, height, numFrames := 48, 32, 5

	w := mpeg4writer.New()
	err := w.Open(path, ports.WriterOptions{
		Width:  width,
		Height: height,
		FPS:    20,
		Codec:  ports.CodecMP4V,
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	for i := 0; i < numFrames; i++ {
		if err := w.WriteFrame(make([]byte, width*height*3)); err != nil {
			t.Fatalf("WriteFrame failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	info, err := New().Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}

	if info.Codec != ports.CodecMP4V {
		t.Errorf("expected codec %q, got %q", ports.CodecMP4V, info.Codec)
	}
	if info.Width != width || info.Height != height {
		t.Errorf("expected %dx%d, got %dx%d", width, height, info.Width, info.Height)
	}
	if info.FrameCount != numFrames {
		t.Errorf("expected %d frames, got %d", numFrames, info.FrameCount)
	}
	if info.Fragmented {
		t.Error("expected progressive MP4")
	}
	// 5 frames at 20 fps, allowing for muxer timescale rounding
	if info.DurationMs < 200 || info.DurationMs > 300 {
		t.Errorf("expected about 250 ms, got %d", info.DurationMs)
	}
}
