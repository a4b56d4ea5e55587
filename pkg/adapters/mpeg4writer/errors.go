package mpeg4writer

import "errors"

var (
	// ErrNotOpen is returned when frames are written before Open or after Close.
	ErrNotOpen = errors.New("mpeg4writer: writer not open")

	// ErrAlreadyOpen is returned when Open is called on an open writer.
	ErrAlreadyOpen = errors.New("mpeg4writer: writer already open")

	// ErrUnsupportedCodec is returned for any codec tag other than mp4v.
	ErrUnsupportedCodec = errors.New("mpeg4writer: unsupported codec")

	// ErrFrameSize is returned when a frame's byte length does not match the
	// dimensions the writer was opened with.
	ErrFrameSize = errors.New("mpeg4writer: frame size mismatch")
)
