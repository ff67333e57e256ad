package mapdata

import (
	"github.com/ironsheep/mapbuilder/internal/palette"
	"github.com/ironsheep/mapbuilder/internal/span"
	vt "github.com/ironsheep/mapbuilder/internal/valuetree"
)

// Item is one placed item. X and Y are grid cells.
type Item struct {
	Kind palette.ItemKind
	X    int
	Y    int

	// Clear is the reserved block anchored at (X, Y); nil when the kind
	// reserves nothing.
	Clear *ClearSpace
}

// ClearSpace is a reserved W×H block of cells whose top-left cell is (X, Y).
// Spans holds the block's rows with absolute column numbers.
type ClearSpace struct {
	X     int
	Y     int
	W     int
	H     int
	Spans *span.Span2d
}

// SpawnPoint is a player spawn cell.
type SpawnPoint struct {
	X int
	Y int
}

func newItem(c palette.Classification, x, y int) (Item, error) {
	it := Item{Kind: c.Kind, X: x, Y: y}
	if c.Clear.Empty() {
		return it, nil
	}

	spans, err := span.Rect(x, c.Clear.W, c.Clear.H)
	if err != nil {
		return Item{}, err
	}
	it.Clear = &ClearSpace{X: x, Y: y, W: c.Clear.W, H: c.Clear.H, Spans: spans}
	return it, nil
}

// value renders {"type": KIND, "data": {"x", "y"[, "clearSpace"]}} with world
// coordinates.
func (it Item) value(blockSize int) vt.Node {
	data := vt.NewObject().
		MustAdd("x", vt.Int(it.X*blockSize)).
		MustAdd("y", vt.Int(it.Y*blockSize))
	if it.Clear != nil {
		data.MustAdd("clearSpace", it.Clear.value())
	}
	return vt.NewObject().
		MustAdd("type", vt.String(it.Kind.String())).
		MustAdd("data", data)
}

func (c *ClearSpace) value() vt.Node {
	return vt.NewObject().
		MustAdd("x", vt.Int(c.X)).
		MustAdd("y", vt.Int(c.Y)).
		MustAdd("w", vt.Int(c.W)).
		MustAdd("h", vt.Int(c.H)).
		MustAdd("spans", c.Spans.Value())
}

func (s SpawnPoint) value(blockSize int) vt.Node {
	return vt.NewObject().
		MustAdd("x", vt.Int(s.X*blockSize)).
		MustAdd("y", vt.Int(s.Y*blockSize))
}
