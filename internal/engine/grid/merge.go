package grid

import (
	"github.com/KirkDiggler/garden-api/internal/engine/growth"
	"github.com/KirkDiggler/garden-api/internal/entities/garden"
)

// MergeOrSwap resolves a drag from src to dst. In priority order:
//
//  1. empty source: nothing happens
//  2. equal-level trees below the top level: dst becomes a fresh tree one level up
//  3. equal-level fruit below the top level: dst becomes fruit one level up
//  4. two seeds: dst becomes a level 0 tree
//  5. empty destination: the source entity moves
//  6. anything else: the two cells swap
//
// Out-of-bounds positions and src == dst are no-ops.
func (g *Grid) MergeOrSwap(src, dst Pos) Outcome {
	if !g.InBounds(src) || !g.InBounds(dst) || src == dst {
		return OutcomeNone
	}

	si, di := g.index(src), g.index(dst)
	from, to := g.cells[si], g.cells[di]

	if from.IsEmpty() {
		return OutcomeNone
	}

	if merged, ok := g.merge(from, to); ok {
		g.cells[di] = merged
		g.cells[si] = EmptyCell()
		return OutcomeMerged
	}

	if to.IsEmpty() {
		g.cells[di] = from
		g.cells[si] = EmptyCell()
		return OutcomeMoved
	}

	g.cells[si], g.cells[di] = to, from
	return OutcomeSwapped
}

func (g *Grid) merge(from, to Cell) (Cell, bool) {
	if from.kind != to.kind {
		return Cell{}, false
	}

	switch from.kind {
	case KindTree:
		if from.level == to.level && from.level+1 <= garden.MaxTreeLevel {
			return TreeCell(growth.NewTree(from.level+1, g.rules)), true
		}
	case KindFruit:
		if from.level == to.level && from.level+1 <= garden.MaxFruitLevel {
			return FruitCell(from.level + 1), true
		}
	case KindSeed:
		return TreeCell(growth.NewTree(0, g.rules)), true
	case KindEmpty:
	}
	return Cell{}, false
}

// UpgradeTree replaces an equal-level tree at p with one a level higher.
// Used when a backpack tree is dropped onto a matching grid tree.
func (g *Grid) UpgradeTree(p Pos, level int) bool {
	c, ok := g.Cell(p)
	if !ok || c.kind != KindTree || c.level != level || level+1 > garden.MaxTreeLevel {
		return false
	}
	g.cells[g.index(p)] = TreeCell(growth.NewTree(level+1, g.rules))
	return true
}
