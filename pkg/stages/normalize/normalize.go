// Package normalize implements the frame normalization stage.
package normalize

import (
	"context"
	"encoding/json"
	"image"

	"github.com/user/h5tomp4/pkg/framestack"
	"github.com/user/h5tomp4/pkg/pipeline"
	"github.com/user/h5tomp4/pkg/ports"
)

const (
	// sheetFrames caps how many frames go into the debug contact sheet.
	sheetFrames  = 16
	sheetColumns = 4
)

// Stage converts a raw stack into 3-channel frames.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new normalize stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("normalize"),
	}
}

// Execute normalizes the stack. Debug output is best effort and never
// fails the stage.
func (s *Stage) Execute(ctx context.Context, input pipeline.NormalizeInput) (pipeline.NormalizeResult, error) {
	result := pipeline.NormalizeResult{
		InputShape: append([]int(nil), input.Stack.Shape...),
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	s.logger.Debug("Normalizing stack %s", framestack.ShapeString(input.Stack.Shape))

	out, err := framestack.Normalize(input.Stack)
	if err != nil {
		return result, err
	}

	s.logger.Debug("Normalized to %s", framestack.ShapeString(out.Shape))

	if s.sink.Enabled() {
		s.logger.Debug("Saving debug frames")
		if err := s.saveDebug(result.InputShape, out); err != nil {
			s.logger.Warn("Failed to save debug output: %s", err)
		}
	}

	result.Stack = out
	return result, nil
}

// stackInfo is the debug description of a normalization.
type stackInfo struct {
	InputShape  []int `json:"input_shape"`
	OutputShape []int `json:"output_shape"`
	Frames      int   `json:"frames"`
	Width       int   `json:"width"`
	Height      int   `json:"height"`
}

func (s *Stage) saveDebug(inputShape []int, out framestack.Stack) error {
	info := stackInfo{
		InputShape:  inputShape,
		OutputShape: out.Shape,
		Frames:      out.Frames(),
		Width:       out.Width(),
		Height:      out.Height(),
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	if err := s.sink.SaveStackJSON(data); err != nil {
		return err
	}

	if out.Frames() == 0 {
		return nil
	}

	if err := s.sink.SaveFrame(0, out.Frame(0).Image()); err != nil {
		return err
	}

	picks := SampleIndices(out.Frames(), sheetFrames)
	images := make([]image.Image, len(picks))
	for i, idx := range picks {
		images[i] = out.Frame(idx).Image()
	}
	return s.sink.SaveContactSheet(s.renderer.ContactSheet(images, sheetColumns))
}

// SampleIndices picks up to limit frame indices spread evenly over n frames,
// always including the first and the last.
func SampleIndices(n, limit int) []int {
	if n <= 0 || limit <= 0 {
		return nil
	}
	if n <= limit {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	if limit == 1 {
		return []int{0}
	}
	out := make([]int, limit)
	for i := range out {
		out[i] = i * (n - 1) / (limit - 1)
	}
	return out
}
