package framestack

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedShape is returned when a stack is not (T,H,W) or (T,H,W,1|3).
	ErrUnsupportedShape = errors.New("unsupported data shape")

	// ErrInvalidChannelCount is returned when a normalized stack does not
	// end in exactly 3 channels.
	ErrInvalidChannelCount = errors.New("invalid channel count")
)

// ShapeError reports a stack whose shape cannot be turned into video frames.
type ShapeError struct {
	Shape []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s %s; expected (T,H,W) or (T,H,W,1/3)",
		ErrUnsupportedShape, ShapeString(e.Shape))
}

// Unwrap lets errors.Is match ErrUnsupportedShape.
func (e *ShapeError) Unwrap() error {
	return ErrUnsupportedShape
}

// Normalize converts a raw stack into a (T,H,W,3) stack.
//
// Grayscale (T,H,W) and single-channel (T,H,W,1) input is broadcast to
// three identical channels. (T,H,W,3) input is returned unchanged.
// Everything else fails with a *ShapeError.
func Normalize(raw Stack) (Stack, error) {
	var out Stack

	switch {
	case len(raw.Shape) == 3:
		if err := checkLen(raw); err != nil {
			return Stack{}, err
		}
		out = broadcast(raw)
	case len(raw.Shape) == 4 && raw.Shape[3] == 1:
		if err := checkLen(raw); err != nil {
			return Stack{}, err
		}
		out = broadcast(raw)
	case len(raw.Shape) == 4 && raw.Shape[3] == 3:
		if err := checkLen(raw); err != nil {
			return Stack{}, err
		}
		out = raw
	default:
		return Stack{}, &ShapeError{Shape: append([]int(nil), raw.Shape...)}
	}

	// Unreachable with the branches above; kept so a new input layout
	// cannot hand the writer anything other than 3 channels.
	if c := out.ChannelCount(); len(out.Shape) != 4 || c != Channels {
		return Stack{}, fmt.Errorf("%w: expected 3-channel frames after conversion, got c=%d",
			ErrInvalidChannelCount, c)
	}

	return out, nil
}

// IsShapeError reports whether err carries an unsupported shape.
func IsShapeError(err error) bool {
	var se *ShapeError
	return errors.As(err, &se)
}

// broadcast repeats every scalar of a (T,H,W) or (T,H,W,1) stack three times.
func broadcast(raw Stack) Stack {
	t, h, w := raw.Shape[0], raw.Shape[1], raw.Shape[2]
	out := Zeros(t, h, w, Channels)
	for i, v := range raw.Pix {
		j := i * Channels
		out.Pix[j] = v
		out.Pix[j+1] = v
		out.Pix[j+2] = v
	}
	return out
}

func checkLen(s Stack) error {
	for _, d := range s.Shape {
		if d < 0 {
			return &ShapeError{Shape: append([]int(nil), s.Shape...)}
		}
	}
	if want := s.Len(); len(s.Pix) != want {
		return fmt.Errorf("stack %s holds %d bytes, want %d", ShapeString(s.Shape), len(s.Pix), want)
	}
	return nil
}
