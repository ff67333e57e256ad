package palette

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	// ErrUnrecognizedColor indicates a color outside the palette.
	ErrUnrecognizedColor = errors.New("palette: unrecognized color")
	// ErrUnclassifiedRegion indicates a non-ignorable classification that does
	// not belong to exactly one region.
	ErrUnclassifiedRegion = errors.New("palette: color belongs to no region")
	// ErrInvalidPalette wraps every validation failure reported by New.
	ErrInvalidPalette = errors.New("palette: invalid palette")
)

// Region identifies one of the two disjoint grid partitions.
type Region int

const (
	NoRegion Region = iota
	Dig
	Gravity
)

func (r Region) String() string {
	switch r {
	case Dig:
		return "dig"
	case Gravity:
		return "gravity"
	default:
		return "none"
	}
}

// ParseRegion accepts "dig", "gravity" or "none" (case-insensitive).
func ParseRegion(s string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dig":
		return Dig, nil
	case "gravity", "grav":
		return Gravity, nil
	case "", "none":
		return NoRegion, nil
	}
	return NoRegion, fmt.Errorf("unknown region %q", s)
}

// ItemKind enumerates placeable items and tiles.
type ItemKind int

const (
	NoItem ItemKind = iota
	Wall
	MetalWall
	Trophy
	GemBank
	Blimp
)

var itemNames = map[ItemKind]string{
	Wall:      "WALL",
	MetalWall: "METAL_WALL",
	Trophy:    "TROPHY",
	GemBank:   "GEM_BANK",
	Blimp:     "BLIMP",
}

func (k ItemKind) String() string {
	if n, ok := itemNames[k]; ok {
		return n
	}
	return "NONE"
}

// ParseItemKind maps an output name such as "GEM_BANK" back to its kind.
func ParseItemKind(s string) (ItemKind, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for k, n := range itemNames {
		if n == s {
			return k, nil
		}
	}
	return NoItem, fmt.Errorf("unknown item kind %q", s)
}

// Outcome is the category a color falls into.
type Outcome int

const (
	// Ignorable pixels contribute nothing to the output.
	Ignorable Outcome = iota
	// Item pixels produce an item record and region membership.
	Item
	// SpawnPoint pixels produce a spawn record and region membership.
	SpawnPoint
	// RegionOnly pixels only mark region membership.
	RegionOnly
)

var outcomeNames = map[Outcome]string{
	Ignorable:  "ignore",
	Item:       "item",
	SpawnPoint: "spawn",
	RegionOnly: "region",
}

func (o Outcome) String() string {
	if n, ok := outcomeNames[o]; ok {
		return n
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// ParseOutcome accepts the names produced by Outcome.String.
func ParseOutcome(s string) (Outcome, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for o, n := range outcomeNames {
		if n == s {
			return o, nil
		}
	}
	return Ignorable, fmt.Errorf("unknown class %q", s)
}

// ClearSpace is a W×H block of cells, anchored at an item's cell, that
// downstream consumers keep free of other placements.
type ClearSpace struct {
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

// Empty reports whether the reservation covers no cells.
func (c ClearSpace) Empty() bool {
	return c.W == 0 || c.H == 0
}

// Classification is the result of classifying one color.
type Classification struct {
	Outcome Outcome
	Kind    ItemKind
	Region  Region
	Clear   ClearSpace
}

// Membership returns the region a pixel of this classification belongs to.
// Ignorable pixels return NoRegion; every other outcome must name exactly one
// region or ErrUnclassifiedRegion is returned.
func (c Classification) Membership() (Region, error) {
	if c.Outcome == Ignorable {
		return NoRegion, nil
	}
	switch c.Region {
	case Dig, Gravity:
		return c.Region, nil
	}
	return NoRegion, ErrUnclassifiedRegion
}

// Entry is one row of a palette table.
type Entry struct {
	Name  string
	Color Color
	Classification
}

// Palette is an immutable color table. Build one with New or Default.
type Palette struct {
	entries []Entry
	byColor map[Color]int
}

// New validates entries and builds a palette from them.
//
// Validation rules:
//   - colors and names are unique
//   - Item entries name a distinct ItemKind; other outcomes name none
//   - every entry except Ignorable belongs to exactly one region
//   - Ignorable entries belong to no region
//   - SpawnPoint entries belong to the gravity region
//   - at most one SpawnPoint entry
//   - clear space dimensions are non-negative and only set on items
func New(entries []Entry) (*Palette, error) {
	p := &Palette{
		entries: make([]Entry, 0, len(entries)),
		byColor: make(map[Color]int, len(entries)),
	}
	names := make(map[string]bool)
	kinds := make(map[ItemKind]bool)
	spawns := 0

	for _, e := range entries {
		if e.Color > 0xffffff {
			return nil, fmt.Errorf("%w: %s: color %s exceeds 24 bits", ErrInvalidPalette, e.Name, e.Color)
		}
		if _, dup := p.byColor[e.Color]; dup {
			return nil, fmt.Errorf("%w: color %s listed twice", ErrInvalidPalette, e.Color)
		}
		if e.Name == "" {
			e.Name = e.Kind.String()
		}
		if names[e.Name] {
			return nil, fmt.Errorf("%w: name %s listed twice", ErrInvalidPalette, e.Name)
		}

		switch e.Outcome {
		case Item:
			if _, ok := itemNames[e.Kind]; !ok {
				return nil, fmt.Errorf("%w: %s: item entry needs a kind", ErrInvalidPalette, e.Name)
			}
			if kinds[e.Kind] {
				return nil, fmt.Errorf("%w: item kind %s listed twice", ErrInvalidPalette, e.Kind)
			}
			kinds[e.Kind] = true
		case SpawnPoint, RegionOnly, Ignorable:
			if e.Kind != NoItem {
				return nil, fmt.Errorf("%w: %s: only item entries carry a kind", ErrInvalidPalette, e.Name)
			}
			if e.Outcome == SpawnPoint {
				spawns++
			}
		default:
			return nil, fmt.Errorf("%w: %s: unknown outcome %d", ErrInvalidPalette, e.Name, int(e.Outcome))
		}

		if _, err := e.Membership(); err != nil {
			return nil, fmt.Errorf("%w: %s (%s): %v", ErrInvalidPalette, e.Name, e.Color, err)
		}
		if e.Outcome == SpawnPoint && e.Region != Gravity {
			return nil, fmt.Errorf("%w: %s: spawn points belong to the gravity region", ErrInvalidPalette, e.Name)
		}
		if e.Outcome == Ignorable && e.Region != NoRegion {
			return nil, fmt.Errorf("%w: %s: ignorable colors belong to no region", ErrInvalidPalette, e.Name)
		}
		if e.Clear.W < 0 || e.Clear.H < 0 {
			return nil, fmt.Errorf("%w: %s: negative clear space", ErrInvalidPalette, e.Name)
		}
		if e.Outcome != Item && !e.Clear.Empty() {
			return nil, fmt.Errorf("%w: %s: only items reserve clear space", ErrInvalidPalette, e.Name)
		}

		names[e.Name] = true
		p.byColor[e.Color] = len(p.entries)
		p.entries = append(p.entries, e)
	}

	if spawns > 1 {
		return nil, fmt.Errorf("%w: %d spawn point colors, want at most one", ErrInvalidPalette, spawns)
	}
	return p, nil
}

// MustNew is New for tables fixed at compile time.
func MustNew(entries []Entry) *Palette {
	p, err := New(entries)
	if err != nil {
		panic(err)
	}
	return p
}

// Classify maps a color to its classification. Colors absent from the palette
// fail with ErrUnrecognizedColor; callers report the color and position.
func (p *Palette) Classify(c Color) (Classification, error) {
	i, ok := p.byColor[c]
	if !ok {
		return Classification{}, ErrUnrecognizedColor
	}
	return p.entries[i].Classification, nil
}

// Lookup returns the entry for c.
func (p *Palette) Lookup(c Color) (Entry, bool) {
	i, ok := p.byColor[c]
	if !ok {
		return Entry{}, false
	}
	return p.entries[i], true
}

// Entries returns the palette table sorted by color.
func (p *Palette) Entries() []Entry {
	out := append([]Entry(nil), p.entries...)
	sort.Slice(out, func(i, j int) bool { return out[i].Color < out[j].Color })
	return out
}

// Nearest returns the palette entry perceptually closest to c, with the
// CIE L*a*b* distance between them. It is meant for error hints: Classify
// never matches approximately.
func (p *Palette) Nearest(c Color) (Entry, float64) {
	best, bestDist := Entry{}, math.Inf(1)
	target := c.toColorful()
	for _, e := range p.Entries() {
		d := target.DistanceLab(e.Color.toColorful())
		if d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist
}
