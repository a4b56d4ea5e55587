// Package framestack holds the in-memory frame array read from a container
// and the shape normalization that turns it into 3-channel video frames.
package framestack

import (
	"fmt"
	"image"
	"image/color"
)

// Channels is the channel count of a normalized stack.
const Channels = 3

// Stack is a row-major byte array with axes (T,H,W) or (T,H,W,C).
type Stack struct {
	Shape []int
	Pix   []uint8
}

// New returns a stack that owns pix and has the given shape.
func New(pix []uint8, shape ...int) Stack {
	return Stack{Shape: append([]int(nil), shape...), Pix: pix}
}

// Zeros allocates a zero-filled stack of the given shape.
func Zeros(shape ...int) Stack {
	return New(make([]uint8, product(shape)), shape...)
}

// Len returns the number of elements implied by the shape.
func (s Stack) Len() int {
	return product(s.Shape)
}

// Frames returns T, the number of frames.
func (s Stack) Frames() int {
	if len(s.Shape) == 0 {
		return 0
	}
	return s.Shape[0]
}

// Height returns H.
func (s Stack) Height() int {
	if len(s.Shape) < 2 {
		return 0
	}
	return s.Shape[1]
}

// Width returns W.
func (s Stack) Width() int {
	if len(s.Shape) < 3 {
		return 0
	}
	return s.Shape[2]
}

// ChannelCount returns the last axis for 4-axis stacks and 1 for 3-axis stacks.
func (s Stack) ChannelCount() int {
	switch len(s.Shape) {
	case 3:
		return 1
	case 4:
		return s.Shape[3]
	default:
		return 0
	}
}

// Frame returns frame i of a normalized stack as a view into Pix.
func (s Stack) Frame(i int) Frame {
	h, w := s.Height(), s.Width()
	size := h * w * Channels
	return Frame{
		Width:  w,
		Height: h,
		Pix:    s.Pix[i*size : (i+1)*size : (i+1)*size],
	}
}

// ShapeString formats a shape the way error messages report it, e.g. (5, 4, 4).
func ShapeString(shape []int) string {
	out := "("
	for i, d := range shape {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d", d)
	}
	if len(shape) == 1 {
		out += ","
	}
	return out + ")"
}

func product(shape []int) int {
	if len(shape) == 0 {
		return 0
	}
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// Frame is a single (H,W,3) frame in BGR channel order, the order the
// video writer consumes.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// At returns the B, G, R bytes of the pixel at (x, y).
func (f Frame) At(x, y int) (b, g, r uint8) {
	off := (y*f.Width + x) * Channels
	return f.Pix[off], f.Pix[off+1], f.Pix[off+2]
}

// Image converts the frame to an RGBA image.
func (f Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			b, g, r := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// FromImage converts an image into a BGR frame of the image's size.
func FromImage(img image.Image) Frame {
	bounds := img.Bounds()
	f := Frame{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]uint8, bounds.Dx()*bounds.Dy()*Channels),
	}
	off := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			f.Pix[off] = c.B
			f.Pix[off+1] = c.G
			f.Pix[off+2] = c.R
			off += Channels
		}
	}
	return f
}

// Fit returns a copy of the frame at width x height. Rows and columns past
// the source are zero; rows and columns past the target are dropped. Pixel
// values are never interpolated.
func (f Frame) Fit(width, height int) Frame {
	out := Frame{Width: width, Height: height, Pix: make([]uint8, width*height*Channels)}
	rowBytes := min(f.Width, width) * Channels
	for y := 0; y < min(f.Height, height); y++ {
		src := y * f.Width * Channels
		dst := y * width * Channels
		copy(out.Pix[dst:dst+rowBytes], f.Pix[src:src+rowBytes])
	}
	return out
}
