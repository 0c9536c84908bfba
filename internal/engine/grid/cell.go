package grid

import (
	"fmt"

	"github.com/KirkDiggler/garden-api/internal/engine/growth"
	"github.com/KirkDiggler/garden-api/internal/entities/garden"
)

// Kind tags the content of a Cell
type Kind int

// Cell kinds
const (
	KindEmpty Kind = iota
	KindSeed
	KindTree
	KindFruit
)

func (k Kind) String() string {
	switch k {
	case KindSeed:
		return "seed"
	case KindTree:
		return "tree"
	case KindFruit:
		return "fruit"
	default:
		return "empty"
	}
}

// Cell is the content of one grid square. Build cells with the constructors;
// the zero value is an empty cell.
type Cell struct {
	kind  Kind
	level int
	tree  *growth.Tree
}

// EmptyCell returns an empty cell
func EmptyCell() Cell { return Cell{} }

// SeedCell returns a cell holding a seed
func SeedCell() Cell { return Cell{kind: KindSeed} }

// TreeCell returns a cell holding t
func TreeCell(t *growth.Tree) Cell {
	if t == nil {
		panic("grid: nil tree")
	}
	return Cell{kind: KindTree, level: t.Level(), tree: t}
}

// FruitCell returns a cell holding a fruit of level. It panics on a level
// outside the fruit table.
func FruitCell(level int) Cell {
	if !garden.ValidFruitLevel(level) {
		panic(fmt.Sprintf("grid: fruit level %d out of range", level))
	}
	return Cell{kind: KindFruit, level: level}
}

// Kind returns the cell tag
func (c Cell) Kind() Kind { return c.kind }

// IsEmpty reports whether nothing occupies the cell
func (c Cell) IsEmpty() bool { return c.kind == KindEmpty }

// Level returns the tree or fruit level, zero for seeds and empty cells
func (c Cell) Level() int { return c.level }

// Tree returns the tree of a tree cell, nil otherwise
func (c Cell) Tree() *growth.Tree { return c.tree }

// ItemKey returns the backpack key matching the cell content
func (c Cell) ItemKey() (garden.ItemKey, bool) {
	switch c.kind {
	case KindSeed:
		return garden.SeedKey, true
	case KindTree:
		return garden.TreeKey(c.level), true
	case KindFruit:
		return garden.FruitKey(c.level), true
	}
	return garden.ItemKey{}, false
}

func (c Cell) clone() Cell {
	if c.tree != nil {
		c.tree = c.tree.Clone()
	}
	return c
}
