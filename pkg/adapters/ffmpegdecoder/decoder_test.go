package ffmpegdecoder

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/user/h5tomp4/pkg/adapters/ffmpegbin"
	"github.com/user/h5tomp4/pkg/adapters/mp4probe"
	"github.com/user/h5tomp4/pkg/adapters/mpeg4writer"
	"github.com/user/h5tomp4/pkg/mocks"
	"github.com/user/h5tomp4/pkg/ports"
)

func TestDecoder_ProbeFailure(t *testing.T) {
	prober := &mocks.VideoProber{
		ProbeFunc: func(path string) (ports.VideoInfo, error) {
			return ports.VideoInfo{}, errors.New("boom")
		},
	}

	if _, err := New(prober).ReadFrames("video.mp4"); err == nil {
		t.Error("expected error when probing fails")
	}
}

func TestDecoder_InvalidSize(t *testing.T) {
	prober := &mocks.VideoProber{
		ProbeFunc: func(path string) (ports.VideoInfo, error) {
			return ports.VideoInfo{Codec: "mp4v"}, nil
		},
	}

	if _, err := New(prober).ReadFrames("video.mp4"); err == nil {
		t.Error("expected error for zero frame size")
	}
}

func TestToRGBA(t *testing.T) {
	img := toRGBA([]byte{1, 2, 3, 4, 5, 6}, 2, 1)

	c := img.RGBAAt(1, 0)
	if c.R != 4 || c.G != 5 || c.B != 6 || c.A != 255 {
		t.Errorf("unexpected pixel %+v", c)
	}
}

func TestDecoder_ReadsWriterOutput(t *testing.T) {
	if !ffmpegbin.IsAvailable() {
		t.Skip("ffmpeg not available")
	}

	path := filepath.Join(t.TempDir(), "gray.mp4")
	width, height := 32, 32

	w := mpeg4writer.New()
	if err := w.Open(path, ports.WriterOptions{Width: width, Height: height, FPS: 20, Codec: ports.CodecMP4V}); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	frame := make([]byte, width*height*3)
	for i := range frame {
		frame[i] = 128
	}
	for i := 0; i < 3; i++ {
		if err := w.WriteFrame(frame); err != nil {
			t.Fatalf("WriteFrame failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	frames, err := New(mp4probe.New()).ReadFrames(path)
	if err != nil {
		t.Fatalf("ReadFrames failed: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}

	b := frames[0].Image.Bounds()
	if b.Dx() != width || b.Dy() != height {
		t.Errorf("expected %dx%d, got %dx%d", width, height, b.Dx(), b.Dy())
	}

	// Flat mid gray survives lossy coding within a small tolerance.
	r, g, bl, _ := frames[1].Image.At(10, 10).RGBA()
	for _, v := range []uint32{r >> 8, g >> 8, bl >> 8} {
		if v < 118 || v > 138 {
			t.Errorf("expected mid gray, got %d", v)
		}
	}
}
