package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
)

const gridLine uint8 = 2

var exportPalette = color.Palette{
	color.White,
	color.Black,
	color.Gray{Y: 0xd0},
}

// String dumps the canvas as text, one line per pixel row, with 'X' for set
// and '.' for unset pixels.
func (c *Canvas) String() string {
	var b strings.Builder
	r := c.img.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c.img.ColorIndexAt(x, y) == ink {
				b.WriteByte('X')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Image returns a copy of the canvas bitmap.
func (c *Canvas) Image() *image.Paletted {
	img := image.NewPaletted(c.img.Rect, canvasPalette)
	copy(img.Pix, c.img.Pix)
	return img
}

// EncodePNG writes the canvas as a PNG image to w, every pixel replicated
// scale times in both directions. With grid set and a scale of at least 3,
// a light gray grid separates the canvas pixels.
func (c *Canvas) EncodePNG(w io.Writer, scale int, grid bool) error {
	if scale < 1 {
		scale = 1
	}
	size := c.Size().Mul(scale)
	dst := image.NewPaletted(image.Rectangle{Max: size}, exportPalette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	if grid && scale >= 3 {
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				if (x%scale == 0 || y%scale == 0) && dst.ColorIndexAt(x, y) == paper {
					dst.SetColorIndex(x, y, gridLine)
				}
			}
		}
	}
	tracer().Debugf("encoding canvas as PNG of size %v", size)
	return png.Encode(w, dst)
}

// PNG returns the canvas encoded as PNG, see EncodePNG.
func (c *Canvas) PNG(scale int, grid bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf, scale, grid); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
