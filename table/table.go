// Package table groups resolved cell text into a sparse matrix keyed by
// 1-based (row, column) coordinates.
package table

import (
	"sort"

	"github.com/delamyth/timecard/blockgraph"
)

// Table is a finalized sparse cell matrix. It is built once from a block
// graph and read-only afterwards.
type Table struct {
	cells    map[int]map[int]string
	rowOrder []int
}

// Build resolves every CELL block in the graph and inserts its trimmed text
// at the block's (row, column) coordinate. When two cells report the same
// coordinate the later one wins; the external service is not expected to emit
// duplicates, so this is an explicit policy rather than a merge.
func Build(g *blockgraph.Graph) *Table {
	t := &Table{cells: make(map[int]map[int]string)}
	for _, c := range g.Cells() {
		t.set(c.RowIndex, c.ColumnIndex, g.CellText(c))
	}
	return t
}

func (t *Table) set(row, col int, text string) {
	cols, ok := t.cells[row]
	if !ok {
		cols = make(map[int]string)
		t.cells[row] = cols
		t.rowOrder = append(t.rowOrder, row)
	}
	cols[col] = text
}

// Rows returns row indices in first-encounter order.
func (t *Table) Rows() []int {
	return t.rowOrder
}

// Columns returns the populated column indices of a row in ascending order.
func (t *Table) Columns(row int) []int {
	cols := make([]int, 0, len(t.cells[row]))
	for c := range t.cells[row] {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	return cols
}

// Cell returns the text at (row, column), or "" if the coordinate is empty.
func (t *Table) Cell(row, col int) string {
	return t.cells[row][col]
}

// Len reports the number of populated rows.
func (t *Table) Len() int {
	return len(t.rowOrder)
}
