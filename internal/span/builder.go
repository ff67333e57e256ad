package span

import "fmt"

// Builder accumulates a Span2d one cell at a time. Rows are opened with
// StartRow and columns within a row must arrive in strictly increasing order.
//
// The zero value is ready to use.
type Builder struct {
	s Span2d
}

// StartRow opens a new, empty row. Call it once per scanned row even when the
// row contributes no cells.
func (b *Builder) StartRow() {
	b.s.rows = append(b.s.rows, nil)
}

// Extend adds column x to the current row, growing the last span when x is
// directly adjacent to it and opening a new span otherwise.
func (b *Builder) Extend(x int) error {
	if len(b.s.rows) == 0 {
		b.StartRow()
	}

	cur := len(b.s.rows) - 1
	row := b.s.rows[cur]
	if len(row) == 0 {
		b.s.rows[cur] = append(row, Span{A: x, B: x})
		return nil
	}

	last := &row[len(row)-1]
	switch {
	case x == last.B+1:
		last.B = x
	case x > last.B+1:
		b.s.rows[cur] = append(row, Span{A: x, B: x})
	default:
		return fmt.Errorf("%w: row %d got %d after %d", ErrOutOfOrder, cur, x, last.B)
	}
	return nil
}

// Span2d returns the region built so far.
func (b *Builder) Span2d() *Span2d {
	return &b.s
}
