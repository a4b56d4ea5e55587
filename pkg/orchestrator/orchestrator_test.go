package orchestrator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/h5tomp4/pkg/adapters/ffmpegbin"
	"github.com/user/h5tomp4/pkg/adapters/ffmpegdecoder"
	"github.com/user/h5tomp4/pkg/adapters/ggrenderer"
	"github.com/user/h5tomp4/pkg/adapters/hdf5source"
	"github.com/user/h5tomp4/pkg/adapters/logger"
	"github.com/user/h5tomp4/pkg/adapters/mp4probe"
	"github.com/user/h5tomp4/pkg/adapters/mpeg4writer"
	"github.com/user/h5tomp4/pkg/adapters/nullsink"
	"github.com/user/h5tomp4/pkg/adapters/osfilesystem"
	"github.com/user/h5tomp4/pkg/framestack"
	"github.com/user/h5tomp4/pkg/mocks"
	"github.com/user/h5tomp4/pkg/pipeline"
	"github.com/user/h5tomp4/pkg/ports"
	"github.com/user/h5tomp4/pkg/stages/encode"
	"github.com/user/h5tomp4/pkg/stages/load"
	"github.com/user/h5tomp4/pkg/stages/normalize"
	"github.com/user/h5tomp4/pkg/testsupport"
)

// mockLoadStage is a mock for the load stage.
type mockLoadStage struct {
	result pipeline.LoadResult
	err    error
	input  pipeline.LoadInput
}

func (m *mockLoadStage) Execute(ctx context.Context, input pipeline.LoadInput) (pipeline.LoadResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.LoadResult{}, m.err
	}
	return m.result, nil
}

// mockNormalizeStage is a mock for the normalize stage.
type mockNormalizeStage struct {
	result pipeline.NormalizeResult
	err    error
	called bool
}

func (m *mockNormalizeStage) Execute(ctx context.Context, input pipeline.NormalizeInput) (pipeline.NormalizeResult, error) {
	m.called = true
	if m.err != nil {
		return pipeline.NormalizeResult{}, m.err
	}
	return m.result, nil
}

// mockEncodeStage is a mock for the encode stage.
type mockEncodeStage struct {
	result pipeline.EncodeResult
	err    error
	called bool
	input  pipeline.EncodeInput
}

func (m *mockEncodeStage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	m.called = true
	m.input = input
	if m.err != nil {
		return pipeline.EncodeResult{}, m.err
	}
	return m.result, nil
}

func testConfig(input, output string) Config {
	config := DefaultConfig()
	config.InputPath = input
	config.OutputPath = output
	return config
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Dataset != "frames" || config.FPS != 20 || config.Codec != "mp4v" {
		t.Errorf("unexpected defaults: %+v", config)
	}
}

func TestOrchestrator_Run(t *testing.T) {
	normalized := framestack.Zeros(5, 4, 4, 3)

	loadStage := &mockLoadStage{result: pipeline.LoadResult{Stack: framestack.Zeros(5, 4, 4)}}
	normalizeStage := &mockNormalizeStage{result: pipeline.NormalizeResult{
		Stack:      normalized,
		InputShape: []int{5, 4, 4},
	}}
	encodeStage := &mockEncodeStage{result: pipeline.EncodeResult{
		FramesWritten: 5,
		Width:         4,
		Height:        4,
		DurationMs:    250,
		FileSize:      900,
	}}

	orch := New(loadStage, normalizeStage, encodeStage, logger.NewNoop())

	config := testConfig("x/y.h5", "x/y.mp4")
	config.Width = 8
	result, err := orch.Run(context.Background(), config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loadStage.input.Path != "x/y.h5" || loadStage.input.Dataset != "frames" {
		t.Errorf("unexpected load input %+v", loadStage.input)
	}
	if encodeStage.input.OutputPath != "x/y.mp4" || encodeStage.input.FPS != 20 || encodeStage.input.Width != 8 {
		t.Errorf("unexpected encode input %+v", encodeStage.input)
	}
	if encodeStage.input.Stack.Len() != normalized.Len() {
		t.Error("expected normalized stack to be encoded")
	}

	if result.FrameCount != 5 || result.DurationMs != 250 || result.FileSize != 900 {
		t.Errorf("unexpected result %+v", result)
	}
	if framestack.ShapeString(result.InputShape) != "(5, 4, 4)" {
		t.Errorf("unexpected input shape %v", result.InputShape)
	}
	if result.SourceWidth != 4 || result.SourceHeight != 4 {
		t.Errorf("unexpected source size %dx%d", result.SourceWidth, result.SourceHeight)
	}
}

func TestOrchestrator_Run_LoadError(t *testing.T) {
	loadStage := &mockLoadStage{err: ports.ErrNotFound}
	normalizeStage := &mockNormalizeStage{}
	encodeStage := &mockEncodeStage{}

	orch := New(loadStage, normalizeStage, encodeStage, logger.NewNoop())

	_, err := orch.Run(context.Background(), testConfig("missing.h5", "out.mp4"))
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "load stage:") {
		t.Errorf("expected stage prefix, got %q", err)
	}
	if normalizeStage.called || encodeStage.called {
		t.Error("later stages should not run after a load failure")
	}
}

func TestOrchestrator_Run_NormalizeError(t *testing.T) {
	loadStage := &mockLoadStage{}
	normalizeStage := &mockNormalizeStage{err: &framestack.ShapeError{Shape: []int{2, 4, 4, 4}}}
	encodeStage := &mockEncodeStage{}

	orch := New(loadStage, normalizeStage, encodeStage, logger.NewNoop())

	_, err := orch.Run(context.Background(), testConfig("in.h5", "out.mp4"))
	if !errors.Is(err, ports.ErrUnsupportedShape) {
		t.Fatalf("expected ErrUnsupportedShape, got %v", err)
	}
	if encodeStage.called {
		t.Error("encode stage should not run after a normalize failure")
	}
}

func TestOrchestrator_Run_EncodeError(t *testing.T) {
	orch := New(
		&mockLoadStage{},
		&mockNormalizeStage{},
		&mockEncodeStage{err: ports.ErrOpenFailure},
		logger.NewNoop(),
	)

	_, err := orch.Run(context.Background(), testConfig("in.h5", "out.mp4"))
	if !errors.Is(err, ports.ErrOpenFailure) {
		t.Fatalf("expected ErrOpenFailure, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "encode stage:") {
		t.Errorf("expected stage prefix, got %q", err)
	}
}

// newRealOrchestrator wires the production adapters with a recording writer
// wrapper so tests can observe whether the output was ever opened.
func newRealOrchestrator(writer ports.VideoWriter) *Orchestrator {
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	log := logger.NewNoop()

	return New(
		load.NewStage(hdf5source.New(), fs, log),
		normalize.NewStage(renderer, nullsink.New(), log),
		encode.NewStage(writer, fs, renderer, log),
		log,
	)
}

func TestOrchestrator_Integration_MissingKey(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "other.h5")
	output := filepath.Join(dir, "other.mp4")
	testsupport.WriteH5(t, input, testsupport.Uint8("other", make([]uint8, 8), 2, 2, 2))

	writer := &mocks.VideoWriter{}
	_, err := newRealOrchestrator(writer).Run(context.Background(), testConfig(input, output))
	if !errors.Is(err, ports.ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
	if writer.OpenCalled {
		t.Error("writer should not be opened")
	}
}

func TestOrchestrator_Integration_NotFound(t *testing.T) {
	dir := t.TempDir()

	writer := &mocks.VideoWriter{}
	_, err := newRealOrchestrator(writer).Run(context.Background(),
		testConfig(filepath.Join(dir, "absent.h5"), filepath.Join(dir, "absent.mp4")))
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if writer.OpenCalled {
		t.Error("writer should not be opened")
	}
}

func TestOrchestrator_Integration_UnsupportedShapeWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "rgba.h5")
	output := filepath.Join(dir, "out", "rgba.mp4")
	testsupport.WriteH5(t, input, testsupport.Uint8("frames", make([]uint8, 2*4*4*4), 2, 4, 4, 4))

	_, err := newRealOrchestrator(mpeg4writer.New()).Run(context.Background(), testConfig(input, output))
	if !errors.Is(err, ports.ErrUnsupportedShape) {
		t.Fatalf("expected ErrUnsupportedShape, got %v", err)
	}
	if !strings.Contains(err.Error(), "(2, 4, 4, 4)") {
		t.Errorf("expected shape in message, got %q", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("expected no output file")
	}
	if _, err := os.Stat(filepath.Dir(output)); !os.IsNotExist(err) {
		t.Error("expected no output directory")
	}
}

func TestOrchestrator_Integration_RoundTrip(t *testing.T) {
	if !ffmpegbin.IsAvailable() {
		t.Skip("ffmpeg not available")
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "mask.h5")
	output := filepath.Join(dir, "mask.mp4")
	testsupport.WriteH5(t, input,
		testsupport.Uint8("frames", testsupport.SinglePixelStack(5, 4, 4, 1, 2), 5, 4, 4))

	result, err := newRealOrchestrator(mpeg4writer.New()).Run(context.Background(), testConfig(input, output))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.FrameCount != 5 {
		t.Errorf("expected 5 frames written, got %d", result.FrameCount)
	}
	if result.FileSize <= 0 {
		t.Error("expected non-empty output")
	}

	info, err := mp4probe.New().Probe(output)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if info.Codec != ports.CodecMP4V {
		t.Errorf("expected codec mp4v, got %q", info.Codec)
	}
	if info.Width != 4 || info.Height != 4 || info.FrameCount != 5 {
		t.Errorf("expected 5 frames of 4x4, got %d frames of %dx%d", info.FrameCount, info.Width, info.Height)
	}

	frames, err := ffmpegdecoder.New(mp4probe.New()).ReadFrames(output)
	if err != nil {
		t.Fatalf("ReadFrames failed: %v", err)
	}
	if len(frames) != 5 {
		t.Fatalf("expected 5 decoded frames, got %d", len(frames))
	}

	// Lossy coding moves values a little; the lit pixel stays near white
	// and everything else near black.
	const litX, litY = 1, 2
	for i, f := range frames {
		bounds := f.Image.Bounds()
		if bounds.Dx() != 4 || bounds.Dy() != 4 {
			t.Fatalf("frame %d: expected 4x4, got %dx%d", i, bounds.Dx(), bounds.Dy())
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				r, g, b, _ := f.Image.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				px := [3]uint32{r >> 8, g >> 8, b >> 8}
				lit := i == 0 && x == litX && y == litY
				for c, v := range px {
					if lit && v < 200 {
						t.Errorf("frame %d pixel (%d,%d) channel %d: expected near 255, got %d", i, x, y, c, v)
					}
					if !lit && v > 50 {
						t.Errorf("frame %d pixel (%d,%d) channel %d: expected near 0, got %d", i, x, y, c, v)
					}
				}
			}
		}
	}
}
