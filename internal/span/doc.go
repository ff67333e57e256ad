// Package span implements inclusive 1-D column intervals and their per-row
// run-length encoding over a grid.
//
// # Invariants
//
// Every Span satisfies A <= B. Within a Span2d row, spans are strictly
// increasing and separated by at least one uncovered column: adjacent columns
// are always merged into a single span by Builder.
//
// # Building Regions
//
//	var b span.Builder
//	b.StartRow()
//	for _, x := range []int{2, 3, 4, 7, 8} {
//	    if err := b.Extend(x); err != nil {
//	        return err
//	    }
//	}
//	// b.Span2d() now holds one row: [2,4] [7,8]
//
// Builder does not sort. Columns that do not lie strictly after the row's last
// span fail with ErrOutOfOrder.
package span
