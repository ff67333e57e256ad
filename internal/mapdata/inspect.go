package mapdata

import (
	"sort"

	"github.com/ironsheep/mapbuilder/internal/palette"
)

// ColorUsage describes one distinct color found in a map image.
type ColorUsage struct {
	Hex        string  `json:"hex"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Recognized bool    `json:"recognized"`

	// Name, Class and Region come from the palette entry; empty when the
	// color is not recognized.
	Name   string `json:"name,omitempty"`
	Class  string `json:"class,omitempty"`
	Region string `json:"region,omitempty"`

	// Nearest is the closest palette entry for unrecognized colors.
	Nearest string `json:"nearest,omitempty"`
}

// InspectResult lists every distinct color in an image, most frequent first.
type InspectResult struct {
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	Colors       []ColorUsage `json:"colors"`
	Unrecognized int          `json:"unrecognized"`
}

// Inspect counts the exact colors in px and matches them against p. Unlike
// Assemble it never fails on unknown colors, which makes it useful for
// finding the stray pixels that would.
func Inspect(px Pixels, p *palette.Palette) *InspectResult {
	counts := make(map[palette.Color]int)
	for row := 0; row < px.Height(); row++ {
		for col := 0; col < px.Width(); col++ {
			b := px.At(row, col)
			counts[palette.FromBytes(b[0], b[1], b[2])]++
		}
	}

	total := px.Width() * px.Height()
	res := &InspectResult{
		Width:  px.Width(),
		Height: px.Height(),
		Colors: make([]ColorUsage, 0, len(counts)),
	}
	for c, n := range counts {
		u := ColorUsage{
			Hex:        c.Hex(),
			Count:      n,
			Percentage: float64(n) / float64(total) * 100,
		}
		if e, ok := p.Lookup(c); ok {
			u.Recognized = true
			u.Name = e.Name
			u.Class = e.Outcome.String()
			if e.Outcome != palette.Ignorable {
				u.Region = e.Region.String()
			}
		} else {
			nearest, _ := p.Nearest(c)
			u.Nearest = nearest.Name
			res.Unrecognized += n
		}
		res.Colors = append(res.Colors, u)
	}

	sort.Slice(res.Colors, func(i, j int) bool {
		if res.Colors[i].Count != res.Colors[j].Count {
			return res.Colors[i].Count > res.Colors[j].Count
		}
		return res.Colors[i].Hex < res.Colors[j].Hex
	})
	return res
}
