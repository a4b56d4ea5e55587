package ports

import (
	"image"
)

// VideoFrame represents a decoded video frame with timing information.
type VideoFrame struct {
	Image       image.Image
	TimestampMs int
}

// VideoDecoder abstracts decoding a video file back into frames.
type VideoDecoder interface {
	// ReadFrames reads and decodes all frames from a video file.
	ReadFrames(path string) ([]VideoFrame, error)
}

// VideoInfo describes the video track of a container.
type VideoInfo struct {
	Codec      string // Sample entry four-character code, e.g. "mp4v"
	Width      int
	Height     int
	FrameCount int
	Timescale  uint32
	DurationMs int
	Fragmented bool
}

// VideoProber reads container metadata without decoding frames.
type VideoProber interface {
	Probe(path string) (VideoInfo, error)
}
