package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/user/h5tomp4/pkg/ports"
)

// maskImage returns a black image with a white square in the top-left quarter.
func maskImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBA{A: 255}
			if x < width/2 && y < height/2 {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRenderer_EncodePNG(t *testing.T) {
	r := New()

	data, err := r.EncodeImage(maskImage(30, 20), ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 20 {
		t.Errorf("expected 30x20, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// PNG is lossless
	if r, _, _, _ := decoded.At(0, 0).RGBA(); r>>8 != 255 {
		t.Errorf("expected white mask pixel, got %d", r>>8)
	}
}

func TestRenderer_EncodeJPEG(t *testing.T) {
	data, err := New().EncodeImage(maskImage(16, 16), ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		t.Error("expected JPEG start-of-image marker")
	}
}

func TestRenderer_EncodeUnknownFormat(t *testing.T) {
	if _, err := New().EncodeImage(maskImage(4, 4), ports.ImageFormat(99), 0); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRenderer_ResizeImage(t *testing.T) {
	r := New()

	resized := r.ResizeImage(maskImage(100, 80), 50, 40)

	bounds := resized.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 40 {
		t.Errorf("expected 50x40, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	rgba := resized.(*image.RGBA)
	for i, v := range rgba.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("byte %d: expected only mask values, got %d", i, v)
		}
	}

	if red, _, _, _ := resized.At(5, 5).RGBA(); red>>8 != 255 {
		t.Errorf("expected white inside the mask, got %d", red>>8)
	}
	if red, _, _, _ := resized.At(45, 35).RGBA(); red>>8 != 0 {
		t.Errorf("expected black outside the mask, got %d", red>>8)
	}
}

func TestRenderer_ResizeImageKeepsOddMask(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	img.SetRGBA(2, 2, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	resized := New().ResizeImage(img, 10, 10).(*image.RGBA)

	lit := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := resized.RGBAAt(x, y)
			switch c.R {
			case 255:
				lit++
			case 0:
			default:
				t.Fatalf("pixel (%d,%d): expected 0 or 255, got %d", x, y, c.R)
			}
		}
	}
	if lit != 4 {
		t.Errorf("expected the lit pixel to cover 4 pixels, got %d", lit)
	}
}

func TestRenderer_ContactSheet(t *testing.T) {
	r := New()

	images := make([]image.Image, 5)
	for i := range images {
		images[i] = maskImage(10, 8)
	}

	sheet := r.ContactSheet(images, 3)

	// 3 columns x 2 rows of 10x8 cells with a 2px gap around each cell.
	bounds := sheet.Bounds()
	if bounds.Dx() != 3*10+4*sheetGap || bounds.Dy() != 2*8+3*sheetGap {
		t.Errorf("unexpected sheet size %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_ContactSheetEmpty(t *testing.T) {
	sheet := New().ContactSheet(nil, 4)
	if !sheet.Bounds().Empty() {
		t.Errorf("expected empty sheet, got %v", sheet.Bounds())
	}
}
