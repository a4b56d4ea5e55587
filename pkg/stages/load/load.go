// Package load implements the container loading stage.
package load

import (
	"context"
	"fmt"

	"github.com/user/h5tomp4/pkg/framestack"
	"github.com/user/h5tomp4/pkg/pipeline"
	"github.com/user/h5tomp4/pkg/ports"
)

// Stage reads the frame dataset out of a container file.
type Stage struct {
	source ports.FrameSource
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new load stage.
func NewStage(source ports.FrameSource, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		source: source,
		fs:     fs,
		logger: logger.WithComponent("load"),
	}
}

// Execute checks the input path and materializes the dataset.
// A missing input is reported before the container is decoded.
func (s *Stage) Execute(ctx context.Context, input pipeline.LoadInput) (pipeline.LoadResult, error) {
	result := pipeline.LoadResult{}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	ok, err := s.fs.IsFile(input.Path)
	if err != nil {
		return result, fmt.Errorf("stat %s: %w", input.Path, err)
	}
	if !ok {
		return result, fmt.Errorf("%w: %s", ports.ErrNotFound, input.Path)
	}

	s.logger.Debug("Reading dataset '%s' from %s", input.Dataset, input.Path)

	stack, err := s.source.Load(input.Path, input.Dataset)
	if err != nil {
		return result, err
	}

	s.logger.Debug("Loaded stack %s (%d bytes)", framestack.ShapeString(stack.Shape), len(stack.Pix))

	result.Stack = stack
	return result, nil
}
