// Package canvas provides the pixel buffer a render is written to, and its raster serializations.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

// ppmMaxLineLength is the longest line a PPM body is allowed to reach.
const ppmMaxLineLength int = 68

// Canvas represents a rectangular grid of colour tuples.
// Colours are stored unclamped; clamping to a displayable range only
// happens when the canvas is serialized.
type Canvas struct {
	Width  int
	Height int
	pixels []tuple.Tuple
}

// New returns a new canvas of the given size with every pixel black.
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]tuple.Tuple, width*height),
	}
}

// PixelAt returns the colour of the pixel at (x, y).
func (c *Canvas) PixelAt(x, y int) tuple.Tuple {
	return c.pixels[x+y*c.Width]
}

// WritePixel sets the colour of the pixel at (x, y).
func (c *Canvas) WritePixel(x, y int, col tuple.Tuple) {
	c.pixels[x+y*c.Width] = col
}

// channel clamps a colour component to [0, 255] on a 255 scale.
func channel(v float64) int {
	scaled := int(math.Round(v * 255.0))
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return scaled
}

// writePPMRow writes one canvas row worth of channel values, splitting
// lines before they reach the maximum PPM line length.
func writePPMRow(b *strings.Builder, values []int) {
	pos := 0
	for _, v := range values {
		n := strconv.Itoa(v)
		if pos+len(n) >= ppmMaxLineLength {
			b.WriteByte('\n')
			pos = 0
		}
		if pos != 0 {
			b.WriteByte(' ')
			pos++
		}
		b.WriteString(n)
		pos += len(n)
	}
	b.WriteByte('\n')
}

// PPM serializes the canvas in the plain (P3) PPM format.
// The output always ends with a newline.
func (c *Canvas) PPM() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "P3\n%d %d\n255\n", c.Width, c.Height)

	values := make([]int, 0, 3*c.Width)
	for y := 0; y < c.Height; y++ {
		values = values[:0]
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			values = append(values, channel(p.X), channel(p.Y), channel(p.Z))
		}
		writePPMRow(&b, values)
	}
	return b.String()
}

// WritePPM writes the canvas to w in the plain (P3) PPM format.
func (c *Canvas) WritePPM(w io.Writer) error {
	_, err := io.WriteString(w, c.PPM())
	return err
}

// Image returns the canvas as a clamped, fully opaque image.
func (c *Canvas) Image() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(channel(p.X)),
				G: uint8(channel(p.Y)),
				B: uint8(channel(p.Z)),
				A: 0xFF,
			})
		}
	}
	return img
}

// WritePNG writes the canvas to w in the PNG format.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}
