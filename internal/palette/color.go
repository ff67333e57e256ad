package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit packed pixel value: (c2 << 16) | (c1 << 8) | c0, where
// c0..c2 are the raw bytes of a pixel in storage order. For B, G, R storage
// this is the familiar 0xRRGGBB.
type Color uint32

// FromBytes packs the three raw bytes of a pixel.
func FromBytes(c0, c1, c2 byte) Color {
	return Color(uint32(c2)<<16 | uint32(c1)<<8 | uint32(c0))
}

// RGB returns the 8-bit components, treating the packed value as 0xRRGGBB.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String formats the color as 0xrrggbb.
func (c Color) String() string {
	return fmt.Sprintf("0x%06x", uint32(c))
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c))
}

// ParseColor accepts "#rrggbb", "#rgb", "0xrrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = "#" + s[2:]
	case !strings.HasPrefix(s, "#"):
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return 0, fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b)), nil
}

// toColorful converts c for perceptual comparisons.
func (c Color) toColorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}
