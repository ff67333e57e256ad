package span

import (
	"errors"
	"fmt"

	"github.com/ironsheep/mapbuilder/internal/valuetree"
)

var (
	// ErrInvalidSpan indicates an interval whose start lies after its end.
	ErrInvalidSpan = errors.New("span: a must not be greater than b")
	// ErrOutOfOrder indicates a column was not strictly after the current row's last span.
	ErrOutOfOrder = errors.New("span: columns must be added in strictly increasing order")
)

// Span is the inclusive column range [A, B].
type Span struct {
	A int
	B int
}

// New returns the span [a, b].
func New(a, b int) (Span, error) {
	if a > b {
		return Span{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidSpan, a, b)
	}
	return Span{A: a, B: b}, nil
}

// Contains reports whether x lies within the span.
func (s Span) Contains(x int) bool {
	return s.A <= x && x <= s.B
}

// Size returns the number of columns covered.
func (s Span) Size() int {
	return s.B - s.A + 1
}

// Value renders the span as {"a": A, "b": B}.
func (s Span) Value() valuetree.Node {
	return valuetree.NewObject().
		MustAdd("a", valuetree.Int(s.A)).
		MustAdd("b", valuetree.Int(s.B))
}

// Span2d is a run-length encoding of a set of grid cells: one ordered list of
// disjoint, non-adjacent spans per row.
type Span2d struct {
	rows [][]Span
}

// Rows returns the number of rows.
func (s *Span2d) Rows() int {
	return len(s.rows)
}

// Row returns the spans of row y. The slice must not be modified.
func (s *Span2d) Row(y int) []Span {
	return s.rows[y]
}

// Contains reports whether cell (x, y) is covered.
func (s *Span2d) Contains(x, y int) bool {
	if y < 0 || y >= len(s.rows) {
		return false
	}
	for _, sp := range s.rows[y] {
		if sp.Contains(x) {
			return true
		}
		if sp.A > x {
			break
		}
	}
	return false
}

// Count returns the total number of covered cells.
func (s *Span2d) Count() int {
	n := 0
	for _, row := range s.rows {
		for _, sp := range row {
			n += sp.Size()
		}
	}
	return n
}

// Value renders the rows as an array of arrays of {"a", "b"} objects.
func (s *Span2d) Value() valuetree.Node {
	out := valuetree.NewArray()
	for _, row := range s.rows {
		r := valuetree.NewArray()
		for _, sp := range row {
			r.Append(sp.Value())
		}
		out.Append(r)
	}
	return out
}

// Rect returns a Span2d of h rows each holding the single span [x, x+w-1].
func Rect(x, w, h int) (*Span2d, error) {
	var b Builder
	for row := 0; row < h; row++ {
		b.StartRow()
		for col := x; col < x+w; col++ {
			if err := b.Extend(col); err != nil {
				return nil, err
			}
		}
	}
	return b.Span2d(), nil
}
