package tesseract

import (
	"fmt"
	"testing"

	"github.com/delamyth/timecard/analyze"
	"github.com/delamyth/timecard/blockgraph"
	"github.com/delamyth/timecard/table"
)

func box(text string, x, y, w, h float64) wordBox {
	return wordBox{Text: text, Bounds: analyze.Region{X: x, Y: y, Width: w, Height: h}}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestClusterRows(t *testing.T) {
	words := []wordBox{
		box("JOHN", 10, 100, 40, 20),
		box("9:00", 120, 103, 30, 20), // slight baseline jitter stays in row
		box("MARY", 10, 160, 40, 20),
	}
	rows := clusterRows(words)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0].Text != "JOHN" || rows[0][1].Text != "9:00" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1][0].Text != "MARY" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestClusterRowsOrdersWordsLeftToRight(t *testing.T) {
	words := []wordBox{
		box("17:00", 200, 100, 40, 20),
		box("9:00", 100, 100, 30, 20),
	}
	rows := clusterRows(words)
	if len(rows) != 1 || rows[0][0].Text != "9:00" || rows[0][1].Text != "17:00" {
		t.Fatalf("row not ordered by x: %+v", rows)
	}
}

func TestColumnBandsMergeAcrossRows(t *testing.T) {
	rows := [][]wordBox{
		{box("JOHN", 10, 100, 40, 20), box("9:00", 120, 100, 30, 20)},
		{box("MARY", 12, 160, 45, 20), box("8:30", 118, 160, 32, 20)},
	}
	bands := columnBands(rows)
	if len(bands) != 2 {
		t.Fatalf("expected 2 column bands, got %d: %+v", len(bands), bands)
	}
	if got := columnIndex(bands, rows[1][0]); got != 1 {
		t.Fatalf("MARY should fall in column 1, got %d", got)
	}
	if got := columnIndex(bands, rows[0][1]); got != 2 {
		t.Fatalf("9:00 should fall in column 2, got %d", got)
	}
}

func TestBuildBlocksRoundTripsThroughPipeline(t *testing.T) {
	words := []wordBox{
		box("JOHN", 10, 100, 40, 20),
		box("9:00", 120, 100, 30, 20),
		box("17:00", 121, 100, 30, 20), // overlaps the 9:00 band: same column
		box("MARY", 10, 160, 40, 20),
		box("8:30", 120, 160, 30, 20),
	}
	blocks := buildBlocks(words, sequentialIDs())

	g := blockgraph.New(blocks)
	tbl := table.Build(g)
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 table rows, got %d", tbl.Len())
	}
	if got := tbl.Cell(1, 1); got != "JOHN" {
		t.Fatalf("unexpected (1,1): %q", got)
	}
	if got := tbl.Cell(1, 2); got != "9:00 17:00" {
		t.Fatalf("unexpected (1,2): %q", got)
	}
	if got := tbl.Cell(2, 2); got != "8:30" {
		t.Fatalf("unexpected (2,2): %q", got)
	}
}

func TestBuildBlocksEmitsLinesUnderPage(t *testing.T) {
	blocks := buildBlocks([]wordBox{box("Timesheet", 10, 10, 80, 20)}, sequentialIDs())
	var page, line *analyze.Block
	for i := range blocks {
		switch blocks[i].Type {
		case analyze.BlockTypePage:
			page = &blocks[i]
		case analyze.BlockTypeLine:
			line = &blocks[i]
		}
	}
	if page == nil || line == nil {
		t.Fatalf("expected page and line blocks: %+v", blocks)
	}
	if len(page.Relationships) != 1 || page.Relationships[0].IDs[0] != line.ID {
		t.Fatalf("page should reference its line: %+v", page.Relationships)
	}
	if line.Text != "Timesheet" {
		t.Fatalf("unexpected line text: %q", line.Text)
	}
}

func TestBuildBlocksEmpty(t *testing.T) {
	blocks := buildBlocks(nil, sequentialIDs())
	if len(blocks) != 1 || blocks[0].Type != analyze.BlockTypePage {
		t.Fatalf("empty scan should yield a bare page block: %+v", blocks)
	}
}
