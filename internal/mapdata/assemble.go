package mapdata

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/mapbuilder/internal/palette"
	"github.com/ironsheep/mapbuilder/internal/span"
	vt "github.com/ironsheep/mapbuilder/internal/valuetree"
)

// DefaultBlockSize is the world size of one grid cell.
const DefaultBlockSize = 64

// Pixels is a read-only pixel grid stored bottom-up, three bytes per pixel.
// *raster.Grid implements it.
type Pixels interface {
	Width() int
	Height() int
	At(row, col int) [3]byte
}

// Classifier maps a packed color to its classification. *palette.Palette
// implements it.
type Classifier interface {
	Classify(c palette.Color) (palette.Classification, error)
}

// nearestFinder is implemented by classifiers that can suggest the closest
// known color for an unrecognized one.
type nearestFinder interface {
	Nearest(c palette.Color) (palette.Entry, float64)
}

// Counts are the rock and gem totals echoed into the document.
type Counts struct {
	RoundRocks  int
	SquareRocks int
	Gems        int
}

// Options tune a scan. The zero value is valid.
type Options struct {
	// BlockSize scales cell coordinates to world coordinates. Zero means
	// DefaultBlockSize.
	BlockSize int

	// Workers > 1 classifies rows concurrently before the sequential region
	// pass. The result is identical to a single-worker scan.
	Workers int
}

// Stats counts pixels by outcome.
type Stats struct {
	Items        int `json:"items"`
	SpawnPoints  int `json:"spawn_points"`
	RegionOnly   int `json:"region_only"`
	Ignored      int `json:"ignored"`
	DigCells     int `json:"dig_cells"`
	GravityCells int `json:"gravity_cells"`
}

// MapData is the assembled level description.
type MapData struct {
	Width       int
	Height      int
	BlockSize   int
	Counts      Counts
	DigRegion   *span.Span2d
	GravRegion  *span.Span2d
	SpawnPoints []SpawnPoint
	Items       []Item
	Stats       Stats
}

// Assemble scans every pixel of px, top row first, and builds the map.
//
// Output coordinates are top-down: grid row y is read from stored row
// height-1-y. Each pixel is classified and routed to the spawn list, the item
// list and the tracker of its region. Any failure aborts the scan and no
// partial map is returned.
func Assemble(px Pixels, cls Classifier, counts Counts, opts Options) (*MapData, error) {
	if counts.RoundRocks < 0 || counts.SquareRocks < 0 || counts.Gems < 0 {
		return nil, fmt.Errorf("%w: %+v", ErrNegativeCount, counts)
	}
	if opts.BlockSize <= 0 {
		opts.BlockSize = DefaultBlockSize
	}

	rows := sequentialRows(px, cls)
	if opts.Workers > 1 {
		var err error
		if rows, err = parallelRows(px, cls, opts.Workers); err != nil {
			return nil, err
		}
	}

	md := &MapData{
		Width:       px.Width(),
		Height:      px.Height(),
		BlockSize:   opts.BlockSize,
		Counts:      counts,
		SpawnPoints: []SpawnPoint{},
		Items:       []Item{},
	}

	var dig, grav span.Builder
	for y := 0; y < md.Height; y++ {
		dig.StartRow()
		grav.StartRow()

		row, err := rows(y)
		if err != nil {
			return nil, err
		}
		for x, c := range row {
			if err := md.place(c, x, y, &dig, &grav); err != nil {
				return nil, err
			}
		}
	}

	md.DigRegion = dig.Span2d()
	md.GravRegion = grav.Span2d()
	md.Stats.DigCells = md.DigRegion.Count()
	md.Stats.GravityCells = md.GravRegion.Count()
	return md, nil
}

// place records one classified pixel.
func (md *MapData) place(c palette.Classification, x, y int, dig, grav *span.Builder) error {
	switch c.Outcome {
	case palette.Ignorable:
		md.Stats.Ignored++
		return nil
	case palette.SpawnPoint:
		md.SpawnPoints = append(md.SpawnPoints, SpawnPoint{X: x, Y: y})
		md.Stats.SpawnPoints++
		return grav.Extend(x)
	case palette.Item:
		it, err := newItem(c, x, y)
		if err != nil {
			return err
		}
		md.Items = append(md.Items, it)
		md.Stats.Items++
	case palette.RegionOnly:
		md.Stats.RegionOnly++
	}

	// classifyRow has checked membership: Region is Dig or Gravity.
	if c.Region == palette.Dig {
		return dig.Extend(x)
	}
	return grav.Extend(x)
}

// rowFunc returns the classifications of grid row y, left to right.
type rowFunc func(y int) ([]palette.Classification, error)

func sequentialRows(px Pixels, cls Classifier) rowFunc {
	return func(y int) ([]palette.Classification, error) {
		return classifyRow(px, cls, y)
	}
}

// parallelRows classifies all rows up front. The error returned is the one
// at the earliest pixel in scan order, as a sequential scan would report.
func parallelRows(px Pixels, cls Classifier, workers int) (rowFunc, error) {
	h := px.Height()
	rows := make([][]palette.Classification, h)
	errs := make([]error, h)

	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < h; y++ {
		y := y
		g.Go(func() error {
			rows[y], errs[y] = classifyRow(px, cls, y)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return func(y int) ([]palette.Classification, error) {
		return rows[y], nil
	}, nil
}

// classifyRow classifies grid row y and checks that every non-ignorable
// pixel belongs to exactly one region.
func classifyRow(px Pixels, cls Classifier, y int) ([]palette.Classification, error) {
	w := px.Width()
	stored := px.Height() - 1 - y
	out := make([]palette.Classification, w)

	for x := 0; x < w; x++ {
		p := px.At(stored, x)
		color := palette.FromBytes(p[0], p[1], p[2])

		c, err := cls.Classify(color)
		if err != nil {
			pe := &PixelError{Err: err, X: x, Y: y, Color: color}
			if nf, ok := cls.(nearestFinder); ok {
				if e, _ := nf.Nearest(color); e.Name != "" {
					pe.Nearest = e.Name
				}
			}
			return nil, pe
		}

		switch c.Outcome {
		case palette.Ignorable, palette.Item, palette.SpawnPoint, palette.RegionOnly:
		default:
			return nil, &PixelError{
				Err:   fmt.Errorf("%w: unknown outcome %s", palette.ErrUnclassifiedRegion, c.Outcome),
				X:     x,
				Y:     y,
				Color: color,
			}
		}
		if _, err := c.Membership(); err != nil {
			return nil, &PixelError{Err: err, X: x, Y: y, Color: color}
		}
		out[x] = c
	}
	return out, nil
}

// Value builds the output document.
func (md *MapData) Value() vt.Node {
	spawns := vt.NewArray()
	for _, s := range md.SpawnPoints {
		spawns.Append(s.value(md.BlockSize))
	}
	items := vt.NewArray()
	for _, it := range md.Items {
		items.Append(it.value(md.BlockSize))
	}

	return vt.NewObject().
		MustAdd("width", vt.Int(md.Width)).
		MustAdd("height", vt.Int(md.Height)).
		MustAdd("numRoundRocks", vt.Int(md.Counts.RoundRocks)).
		MustAdd("numSquareRocks", vt.Int(md.Counts.SquareRocks)).
		MustAdd("numGems", vt.Int(md.Counts.Gems)).
		MustAdd("gravRegion", md.GravRegion.Value()).
		MustAdd("digRegion", md.DigRegion.Value()).
		MustAdd("spawnPoints", spawns).
		MustAdd("items", items)
}

// String returns the serialized document.
func (md *MapData) String() string {
	return vt.Serialize(md.Value())
}

// WriteTo writes the serialized document to w.
func (md *MapData) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, md.String())
	return int64(n), err
}
