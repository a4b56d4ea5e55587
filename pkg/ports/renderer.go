package ports

import (
	"image"
)

// Renderer abstracts image processing operations.
type Renderer interface {
	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image

	// ContactSheet tiles images into a grid with the given number of columns.
	ContactSheet(images []image.Image, columns int) image.Image
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)
