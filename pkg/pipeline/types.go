package pipeline

import (
	"github.com/user/h5tomp4/pkg/framestack"
	"github.com/user/h5tomp4/pkg/ports"
)

// =============================================================================
// Load Stage Types
// =============================================================================

// LoadInput names the container file and the dataset to read.
type LoadInput struct {
	Path    string
	Dataset string // Dataset name inside the container (default: "frames")
}

// LoadResult contains the raw, fully materialized frame array.
type LoadResult struct {
	Stack framestack.Stack
}

// =============================================================================
// Normalize Stage Types
// =============================================================================

// NormalizeInput contains the raw stack to normalize.
type NormalizeInput struct {
	Stack framestack.Stack
}

// NormalizeResult contains the canonical (T,H,W,3) stack.
type NormalizeResult struct {
	Stack      framestack.Stack
	InputShape []int
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains parameters for video encoding.
type EncodeInput struct {
	Stack      framestack.Stack // Normalized (T,H,W,3) stack
	OutputPath string
	Codec      string // Four-character codec tag
	FPS        int
	Quality    int // Encoder quantizer: 1-31 (lower is higher quality)
	Width      int // Output frame width, 0 = source width
	Height     int // Output frame height, 0 = source height
}

// DefaultEncodeInput returns EncodeInput with default values.
func DefaultEncodeInput() EncodeInput {
	return EncodeInput{
		Codec:   ports.CodecMP4V,
		FPS:     20,
		Quality: 2,
	}
}

// EncodeResult describes the written video.
type EncodeResult struct {
	FramesWritten int
	Width         int
	Height        int
	DurationMs    int
	FileSize      int64
}
