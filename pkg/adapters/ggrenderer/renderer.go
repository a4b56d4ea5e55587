// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/h5tomp4/pkg/ports"
)

// sheetGap is the spacing in pixels between contact sheet cells.
const sheetGap = 2

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage scales an image to the specified dimensions. Nearest neighbor
// sampling keeps every output value one of the input values, so binary and
// label masks stay intact.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// ContactSheet tiles images left to right, top to bottom on a dark gray
// background. Every cell takes the size of the first image.
func (r *Renderer) ContactSheet(images []image.Image, columns int) image.Image {
	if len(images) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	if columns <= 0 {
		columns = 1
	}
	if columns > len(images) {
		columns = len(images)
	}
	rows := (len(images) + columns - 1) / columns

	cell := images[0].Bounds()
	cw, ch := cell.Dx(), cell.Dy()

	dc := gg.NewContext(
		columns*cw+(columns+1)*sheetGap,
		rows*ch+(rows+1)*sheetGap,
	)
	dc.SetRGB255(64, 64, 64)
	dc.Clear()

	for i, img := range images {
		col, row := i%columns, i/columns
		x := sheetGap + col*(cw+sheetGap)
		y := sheetGap + row*(ch+sheetGap)
		if b := img.Bounds(); b.Dx() != cw || b.Dy() != ch {
			img = r.ResizeImage(img, cw, ch)
		}
		dc.DrawImage(img, x, y)
	}

	return dc.Image()
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)
