package tesseract

import (
	"sort"
	"strings"

	"github.com/delamyth/timecard/analyze"
)

// wordBox is one recognized word with its pixel bounds.
type wordBox struct {
	Text       string
	Bounds     analyze.Region
	Confidence float64
}

// rowOverlapRatio is the minimum vertical overlap, relative to the shorter of
// the two extents, for a word to join an existing row band.
const rowOverlapRatio = 0.5

// clusterRows groups words into horizontal bands. Words are processed in
// ascending top-edge order; a word joins the current band when its vertical
// extent overlaps the band by at least rowOverlapRatio, otherwise it starts a
// new band. Within each band words are ordered left to right.
func clusterRows(words []wordBox) [][]wordBox {
	if len(words) == 0 {
		return nil
	}
	sorted := append([]wordBox(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Bounds.Y < sorted[j].Bounds.Y
	})

	var rows [][]wordBox
	bandTop, bandBottom := sorted[0].Bounds.Y, sorted[0].Bounds.Y+sorted[0].Bounds.Height
	current := []wordBox{sorted[0]}
	for _, w := range sorted[1:] {
		top, bottom := w.Bounds.Y, w.Bounds.Y+w.Bounds.Height
		if verticalOverlap(bandTop, bandBottom, top, bottom) >= rowOverlapRatio {
			current = append(current, w)
			if top < bandTop {
				bandTop = top
			}
			if bottom > bandBottom {
				bandBottom = bottom
			}
			continue
		}
		rows = append(rows, sortByX(current))
		current = []wordBox{w}
		bandTop, bandBottom = top, bottom
	}
	rows = append(rows, sortByX(current))
	return rows
}

func verticalOverlap(aTop, aBottom, bTop, bBottom float64) float64 {
	overlap := min64(aBottom, bBottom) - max64(aTop, bTop)
	if overlap <= 0 {
		return 0
	}
	shorter := min64(aBottom-aTop, bBottom-bTop)
	if shorter <= 0 {
		return 0
	}
	return overlap / shorter
}

func sortByX(row []wordBox) []wordBox {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].Bounds.X < row[j].Bounds.X
	})
	return row
}

// columnBands projects every word onto the X axis and merges overlapping
// extents into bands. Each resulting band is one table column; the sheet's
// ruled grid keeps the extents of a column's words disjoint from its
// neighbors'.
func columnBands(rows [][]wordBox) []band {
	var bands []band
	for _, row := range rows {
		for _, w := range row {
			bands = append(bands, band{w.Bounds.X, w.Bounds.X + w.Bounds.Width})
		}
	}
	if len(bands) == 0 {
		return nil
	}
	sort.Slice(bands, func(i, j int) bool { return bands[i].left < bands[j].left })
	merged := bands[:1]
	for _, b := range bands[1:] {
		last := &merged[len(merged)-1]
		if b.left <= last.right {
			if b.right > last.right {
				last.right = b.right
			}
			continue
		}
		merged = append(merged, b)
	}
	return merged
}

type band struct {
	left, right float64
}

// columnIndex returns the 1-based band index containing the word's center, or
// 0 when no band matches.
func columnIndex(bands []band, w wordBox) int {
	center := w.Bounds.X + w.Bounds.Width/2
	for i, b := range bands {
		if center >= b.left && center <= b.right {
			return i + 1
		}
	}
	return 0
}

// buildBlocks synthesizes the Textract-style block graph from word boxes: a
// PAGE holding LINE blocks, a TABLE holding CELL blocks, and WORD leaves
// shared by both hierarchies.
func buildBlocks(words []wordBox, newID func() string) []analyze.Block {
	rows := clusterRows(words)
	bands := columnBands(rows)

	var blocks []analyze.Block
	var lineIDs, cellIDs []string
	var lineBlocks, cellBlocks, wordBlocks []analyze.Block

	for r, row := range rows {
		wordIDs := make([]string, 0, len(row))
		texts := make([]string, 0, len(row))
		byColumn := make(map[int][]string)
		columnText := make(map[int][]wordBox)
		var lineBounds analyze.Region
		var confSum float64

		for _, w := range row {
			id := newID()
			wordIDs = append(wordIDs, id)
			texts = append(texts, w.Text)
			confSum += w.Confidence
			lineBounds = union(lineBounds, w.Bounds)
			wordBlocks = append(wordBlocks, analyze.Block{
				ID:         id,
				Type:       analyze.BlockTypeWord,
				Text:       w.Text,
				Confidence: w.Confidence,
				Page:       1,
				Bounds:     w.Bounds,
			})
			if col := columnIndex(bands, w); col > 0 {
				byColumn[col] = append(byColumn[col], id)
				columnText[col] = append(columnText[col], w)
			}
		}

		lineID := newID()
		lineIDs = append(lineIDs, lineID)
		lineConf := 0.0
		if len(row) > 0 {
			lineConf = confSum / float64(len(row))
		}
		lineBlocks = append(lineBlocks, analyze.Block{
			ID:            lineID,
			Type:          analyze.BlockTypeLine,
			Text:          strings.Join(texts, " "),
			Confidence:    lineConf,
			Page:          1,
			Bounds:        lineBounds,
			Relationships: []analyze.Relationship{{Type: analyze.RelationshipChild, IDs: wordIDs}},
		})

		cols := make([]int, 0, len(byColumn))
		for col := range byColumn {
			cols = append(cols, col)
		}
		sort.Ints(cols)
		for _, col := range cols {
			cellID := newID()
			cellIDs = append(cellIDs, cellID)
			var cellBounds analyze.Region
			for _, w := range columnText[col] {
				cellBounds = union(cellBounds, w.Bounds)
			}
			cellBlocks = append(cellBlocks, analyze.Block{
				ID:            cellID,
				Type:          analyze.BlockTypeCell,
				Page:          1,
				RowIndex:      r + 1,
				ColumnIndex:   col,
				Bounds:        cellBounds,
				Relationships: []analyze.Relationship{{Type: analyze.RelationshipChild, IDs: byColumn[col]}},
			})
		}
	}

	page := analyze.Block{
		ID:   newID(),
		Type: analyze.BlockTypePage,
		Page: 1,
	}
	if len(lineIDs) > 0 {
		page.Relationships = []analyze.Relationship{{Type: analyze.RelationshipChild, IDs: lineIDs}}
	}
	blocks = append(blocks, page)
	blocks = append(blocks, lineBlocks...)
	if len(cellIDs) > 0 {
		tableBlock := analyze.Block{
			ID:            newID(),
			Type:          analyze.BlockTypeTable,
			Page:          1,
			Relationships: []analyze.Relationship{{Type: analyze.RelationshipChild, IDs: cellIDs}},
		}
		blocks = append(blocks, tableBlock)
		blocks = append(blocks, cellBlocks...)
	}
	blocks = append(blocks, wordBlocks...)
	return blocks
}

func union(a, b analyze.Region) analyze.Region {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	left := min64(a.X, b.X)
	top := min64(a.Y, b.Y)
	right := max64(a.X+a.Width, b.X+b.Width)
	bottom := max64(a.Y+a.Height, b.Y+b.Height)
	return analyze.Region{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
