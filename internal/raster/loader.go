package raster

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// Load decodes the image file at path into a Grid.
//
// Any format understood by the imaging package is accepted (BMP, PNG, GIF,
// JPEG, TIFF). Map sources should be lossless: JPEG artifacts will produce
// colors outside the palette.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a decodable image
func Load(path string) (*Grid, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return FromImage(img), nil
}

// Decode reads an image from r into a Grid.
func Decode(r io.Reader) (*Grid, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// EncodeBMP writes the grid as a 24-bit bitmap.
func EncodeBMP(w io.Writer, g *Grid) error {
	if err := bmp.Encode(w, g.Image()); err != nil {
		return fmt.Errorf("failed to encode bitmap: %w", err)
	}
	return nil
}

// Info describes a map image on disk.
type Info struct {
	// Width is the image width in pixels (grid columns).
	Width int `json:"width"`

	// Height is the image height in pixels (grid rows).
	Height int `json:"height"`

	// Format is the lower-case format derived from the file extension, or
	// "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadInfo loads path through the cache and reports its dimensions and
// format.
func LoadInfo(cache *Cache, path string) (*Info, error) {
	g, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	return &Info{
		Width:         g.Width(),
		Height:        g.Height(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
