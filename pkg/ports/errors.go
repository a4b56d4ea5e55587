package ports

import (
	"errors"

	"github.com/user/h5tomp4/pkg/framestack"
)

var (
	// ErrNotFound is returned when the input container file does not exist.
	ErrNotFound = errors.New("input file not found")

	// ErrMissingKey is returned when the requested dataset is absent from the container.
	ErrMissingKey = errors.New("dataset not found")

	// ErrUnsupportedShape is returned when the frame array shape is not
	// (T,H,W) or (T,H,W,1|3).
	ErrUnsupportedShape = framestack.ErrUnsupportedShape

	// ErrInvalidChannelCount is returned when a normalized stack does not
	// carry exactly 3 channels.
	ErrInvalidChannelCount = framestack.ErrInvalidChannelCount

	// ErrOpenFailure is returned when the video writer cannot be opened.
	ErrOpenFailure = errors.New("could not open video writer")
)
