// Package framebuffer is a small software rasterizer: filled rectangles and
// bitmap-font text on an owned RGBA buffer, exportable as PNG.
package framebuffer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LineHeight is the vertical advance of one text line in pixels.
const LineHeight = 13

// Image is a pixel buffer with a top-left origin.
// The buffer belongs to the Image and is released with it.
type Image struct {
	pix  *image.RGBA
	face font.Face
}

// New allocates a w×h framebuffer cleared to black.
func New(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	img := &Image{
		pix:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: basicfont.Face7x13,
	}
	img.Fill(color.Black)
	return img
}

// Width returns the buffer width in pixels.
func (i *Image) Width() int {
	return i.pix.Bounds().Dx()
}

// Height returns the buffer height in pixels.
func (i *Image) Height() int {
	return i.pix.Bounds().Dy()
}

// RGBA exposes the underlying buffer for encoders and tests.
func (i *Image) RGBA() *image.RGBA {
	return i.pix
}

// At returns the colour at pixel (x, y).
func (i *Image) At(x, y int) color.RGBA {
	return i.pix.RGBAAt(x, y)
}

// Fill paints the whole buffer.
func (i *Image) Fill(c color.Color) {
	draw.Draw(i.pix, i.pix.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect paints the rectangle [x, x+w) × [y, y+h), clipped to the buffer.
// Coordinates are rounded to the nearest pixel edge.
func (i *Image) FillRect(x, y, w, h float64, c color.Color) {
	x0 := int(math.Round(x))
	y0 := int(math.Round(y))
	x1 := int(math.Round(x + w))
	y1 := int(math.Round(y + h))
	r := image.Rect(x0, y0, x1, y1).Intersect(i.pix.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(i.pix, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Text draws s with its top-left corner at (x, y).
func (i *Image) Text(x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  i.pix,
		Src:  image.NewUniform(c),
		Face: i.face,
		Dot:  fixed.P(x, y+i.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// TextWidth returns the advance of s in pixels.
func (i *Image) TextWidth(s string) int {
	return font.MeasureString(i.face, s).Ceil()
}

// EncodePNG writes the buffer as PNG.
func (i *Image) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, i.pix); err != nil {
		return fmt.Errorf("framebuffer: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the buffer to path, creating parent directories.
func (i *Image) SavePNG(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("framebuffer: create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("framebuffer: create %s: %w", path, err)
	}
	if err := i.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("framebuffer: close %s: %w", path, err)
	}
	return nil
}
