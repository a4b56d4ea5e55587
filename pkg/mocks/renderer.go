package mocks

import (
	"image"

	"github.com/user/h5tomp4/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
	ContactSheetFunc func(images []image.Image, columns int) image.Image

	// Recorded calls for verification
	EncodeCalls  []ports.ImageFormat
	ResizeCalls  []ResizeCall
	SheetColumns int
}

// ResizeCall records a call to ResizeImage.
type ResizeCall struct {
	FromWidth, FromHeight int
	Width, Height         int
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.EncodeCalls = append(m.EncodeCalls, format)
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	m.ResizeCalls = append(m.ResizeCalls, ResizeCall{
		FromWidth: b.Dx(), FromHeight: b.Dy(), Width: width, Height: height,
	})
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) ContactSheet(images []image.Image, columns int) image.Image {
	m.SheetColumns = columns
	if m.ContactSheetFunc != nil {
		return m.ContactSheetFunc(images, columns)
	}
	return image.NewRGBA(image.Rect(0, 0, 10, 10))
}

var _ ports.Renderer = (*Renderer)(nil)
