// Package blockgraph turns the flat block list of a document analysis into a
// random-access graph: blocks are indexed by id so CHILD relationships can be
// resolved without repeated linear scans.
package blockgraph

import (
	"strings"

	"github.com/delamyth/timecard/analyze"
)

// Graph is an id-indexed view over an analysis block list.
type Graph struct {
	blocks []analyze.Block
	byID   map[string]int
}

// New builds a graph over the given blocks. The slice is referenced, not
// copied; callers must not mutate it while the graph is in use.
func New(blocks []analyze.Block) *Graph {
	byID := make(map[string]int, len(blocks))
	for i, b := range blocks {
		byID[b.ID] = i
	}
	return &Graph{blocks: blocks, byID: byID}
}

// Blocks returns the underlying block list in analysis order.
func (g *Graph) Blocks() []analyze.Block {
	return g.blocks
}

// Lookup returns the block with the given id.
func (g *Graph) Lookup(id string) (analyze.Block, bool) {
	i, ok := g.byID[id]
	if !ok {
		return analyze.Block{}, false
	}
	return g.blocks[i], true
}

// Cells returns all CELL blocks in analysis order.
func (g *Graph) Cells() []analyze.Block {
	var cells []analyze.Block
	for _, b := range g.blocks {
		if b.Type == analyze.BlockTypeCell {
			cells = append(cells, b)
		}
	}
	return cells
}

// CellText resolves the text content of a CELL block: the space-joined text of
// all WORD blocks referenced by its first-level CHILD relationships, in
// relationship order. Dangling ids and non-WORD children contribute nothing;
// a malformed graph yields an empty string, never an error.
func (g *Graph) CellText(cell analyze.Block) string {
	var words []string
	for _, rel := range cell.Relationships {
		if rel.Type != analyze.RelationshipChild {
			continue
		}
		for _, id := range rel.IDs {
			child, ok := g.Lookup(id)
			if !ok || child.Type != analyze.BlockTypeWord {
				continue
			}
			words = append(words, child.Text)
		}
	}
	return strings.TrimSpace(strings.Join(words, " "))
}
