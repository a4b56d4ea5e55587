package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveStackJSON saves the loaded and normalized stack metadata as JSON.
	SaveStackJSON(data []byte) error

	// SaveFrame saves a single normalized frame.
	SaveFrame(index int, img image.Image) error

	// SaveContactSheet saves an overview image of sampled frames.
	SaveContactSheet(img image.Image) error
}
