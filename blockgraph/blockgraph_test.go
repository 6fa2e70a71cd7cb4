package blockgraph

import (
	"testing"

	"github.com/delamyth/timecard/analyze"
)

func word(id, text string) analyze.Block {
	return analyze.Block{ID: id, Type: analyze.BlockTypeWord, Text: text}
}

func cell(id string, row, col int, childIDs ...string) analyze.Block {
	b := analyze.Block{ID: id, Type: analyze.BlockTypeCell, RowIndex: row, ColumnIndex: col}
	if len(childIDs) > 0 {
		b.Relationships = []analyze.Relationship{{Type: analyze.RelationshipChild, IDs: childIDs}}
	}
	return b
}

func TestCellText(t *testing.T) {
	blocks := []analyze.Block{
		cell("c1", 1, 1, "w1", "w2"),
		word("w1", "JOHN"),
		word("w2", "SMITH"),
	}
	g := New(blocks)
	if got := g.CellText(blocks[0]); got != "JOHN SMITH" {
		t.Fatalf("unexpected cell text: %q", got)
	}
}

func TestCellTextDanglingID(t *testing.T) {
	blocks := []analyze.Block{
		cell("c1", 1, 1, "w1", "missing", "w2"),
		word("w1", "9:00"),
		word("w2", "17:00"),
	}
	g := New(blocks)
	if got := g.CellText(blocks[0]); got != "9:00 17:00" {
		t.Fatalf("dangling id should contribute nothing, got %q", got)
	}
}

func TestCellTextIgnoresNonWordChildren(t *testing.T) {
	blocks := []analyze.Block{
		cell("c1", 1, 1, "l1", "w1"),
		{ID: "l1", Type: analyze.BlockTypeLine, Text: "should not appear"},
		word("w1", "OUT"),
	}
	g := New(blocks)
	if got := g.CellText(blocks[0]); got != "OUT" {
		t.Fatalf("non-word child leaked into text: %q", got)
	}
}

func TestCellTextEmpty(t *testing.T) {
	g := New([]analyze.Block{cell("c1", 2, 3)})
	if got := g.CellText(cell("c1", 2, 3)); got != "" {
		t.Fatalf("cell with no children should be empty, got %q", got)
	}
}

func TestCells(t *testing.T) {
	blocks := []analyze.Block{
		{ID: "p1", Type: analyze.BlockTypePage},
		cell("c1", 1, 1),
		word("w1", "x"),
		cell("c2", 1, 2),
	}
	g := New(blocks)
	cells := g.Cells()
	if len(cells) != 2 || cells[0].ID != "c1" || cells[1].ID != "c2" {
		t.Fatalf("unexpected cells: %+v", cells)
	}
}

func TestLookupMissing(t *testing.T) {
	g := New(nil)
	if _, ok := g.Lookup("nope"); ok {
		t.Fatalf("lookup on empty graph should miss")
	}
}
