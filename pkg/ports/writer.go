package ports

// CodecMP4V is the four-character tag of the MPEG-4 Part 2 codec that
// output videos are written with.
const CodecMP4V = "mp4v"

// VideoWriter abstracts a video file being written one frame at a time.
// A writer moves from closed to open on Open and back on Close.
type VideoWriter interface {
	// Open binds the writer to an output path and starts the encoder.
	Open(path string, opts WriterOptions) error

	// WriteFrame appends one frame of Width*Height*3 bytes in BGR order.
	WriteFrame(bgr []byte) error

	// Close finalizes the stream and releases the encoder.
	// Calling Close more than once is a no-op.
	Close() error
}

// WriterOptions configures video writing parameters.
type WriterOptions struct {
	Width   int
	Height  int
	FPS     int    // Frames per second, must be positive
	Codec   string // Four-character codec tag
	Quality int    // Quantizer: 1-31 (lower is higher quality), 0 = encoder default
}
