package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Channels is the number of bytes stored per pixel.
const Channels = 3

// Grid is an immutable height×width×3 byte array in bitmap storage order:
// rows run bottom-up (row 0 is the bottom of the image) and each pixel is
// stored as B, G, R.
type Grid struct {
	width  int
	height int
	pix    []byte
}

// NewGrid wraps pix, which must hold exactly width*height*3 bytes laid out
// bottom-up as described on Grid. The slice is not copied.
func NewGrid(width, height int, pix []byte) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*Channels {
		return nil, fmt.Errorf("grid %dx%d needs %d bytes, got %d",
			width, height, width*height*Channels, len(pix))
	}
	return &Grid{width: width, height: height, pix: pix}, nil
}

// FromImage converts a decoded image to a Grid. Alpha is discarded; the
// stored channels are the non-premultiplied color values.
func FromImage(img image.Image) *Grid {
	// FlipV puts the bottom image row first, which is the storage order.
	flipped := imaging.FlipV(img)
	b := flipped.Bounds()
	w, h := b.Dx(), b.Dy()

	pix := make([]byte, 0, w*h*Channels)
	for row := 0; row < h; row++ {
		off := row * flipped.Stride
		for col := 0; col < w; col++ {
			r, g, bl := flipped.Pix[off], flipped.Pix[off+1], flipped.Pix[off+2]
			pix = append(pix, bl, g, r)
			off += 4
		}
	}
	return &Grid{width: w, height: h, pix: pix}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the stored bytes of the pixel at (row, col), with row 0 at the
// bottom of the image.
func (g *Grid) At(row, col int) [Channels]byte {
	i := (row*g.width + col) * Channels
	return [Channels]byte{g.pix[i], g.pix[i+1], g.pix[i+2]}
}

// Image converts the grid back to a top-down, opaque image.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		row := g.height - 1 - y
		for x := 0; x < g.width; x++ {
			p := g.At(row, x)
			img.SetNRGBA(x, y, color.NRGBA{R: p[2], G: p[1], B: p[0], A: 255})
		}
	}
	return img
}
