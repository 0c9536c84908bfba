// Package grid implements the fixed-size placement surface for seeds, trees
// and fruit, including drag resolution, bulk harvest and selling.
package grid

import (
	"fmt"

	"github.com/KirkDiggler/garden-api/internal/engine/growth"
	"github.com/KirkDiggler/garden-api/internal/entities/garden"
)

// Pos addresses a cell
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Outcome describes what MergeOrSwap did
type Outcome int

// MergeOrSwap outcomes
const (
	OutcomeNone Outcome = iota
	OutcomeMerged
	OutcomeMoved
	OutcomeSwapped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMerged:
		return "merged"
	case OutcomeMoved:
		return "moved"
	case OutcomeSwapped:
		return "swapped"
	default:
		return "none"
	}
}

// Collector receives harvested items. The backpack implements it.
type Collector interface {
	AddItem(key garden.ItemKey, count int)
}

// Slot pairs a position with its cell in a snapshot
type Slot struct {
	Pos  Pos
	Cell Cell
}

// Grid is a width x height surface addressed by (row, col), row-major
type Grid struct {
	width  int
	height int
	cells  []Cell
	rules  growth.Rules
}

// New creates an empty grid. Trees created by merges use rules.
func New(width, height int, rules growth.Rules) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		rules:  rules,
	}
}

// Width is the number of columns
func (g *Grid) Width() int { return g.width }

// Height is the number of rows
func (g *Grid) Height() int { return g.height }

// Rules returns the growth rules used for new trees
func (g *Grid) Rules() growth.Rules { return g.rules }

// InBounds reports whether p addresses a cell
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

func (g *Grid) index(p Pos) int {
	return p.Row*g.width + p.Col
}

// Cell returns the content at p
func (g *Grid) Cell(p Pos) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[g.index(p)], true
}

// TreeAt returns the tree at p, nil when p holds no tree
func (g *Grid) TreeAt(p Pos) *growth.Tree {
	c, ok := g.Cell(p)
	if !ok {
		return nil
	}
	return c.Tree()
}

// Place puts c at p. It fails when p is out of bounds or occupied.
func (g *Grid) Place(p Pos, c Cell) bool {
	if !g.InBounds(p) || c.IsEmpty() {
		return false
	}
	i := g.index(p)
	if !g.cells[i].IsEmpty() {
		return false
	}
	g.cells[i] = c
	return true
}

// FirstEmpty returns the first empty cell in row-major order
func (g *Grid) FirstEmpty() (Pos, bool) {
	for i, c := range g.cells {
		if c.IsEmpty() {
			return Pos{Row: i / g.width, Col: i % g.width}, true
		}
	}
	return Pos{}, false
}

// PlaceFirstEmpty places c on the first empty cell
func (g *Grid) PlaceFirstEmpty(c Cell) (Pos, bool) {
	p, ok := g.FirstEmpty()
	if !ok || !g.Place(p, c) {
		return Pos{}, false
	}
	return p, true
}

// Remove clears p and returns what was there
func (g *Grid) Remove(p Pos) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	i := g.index(p)
	c := g.cells[i]
	if c.IsEmpty() {
		return Cell{}, false
	}
	g.cells[i] = EmptyCell()
	return c, true
}

// Replace overwrites p unconditionally
func (g *Grid) Replace(p Pos, c Cell) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[g.index(p)] = c
	return true
}

// EmptyCount returns the number of free cells
func (g *Grid) EmptyCount() int {
	n := 0
	for _, c := range g.cells {
		if c.IsEmpty() {
			n++
		}
	}
	return n
}

// EachTree calls fn for every tree in row-major order
func (g *Grid) EachTree(fn func(Pos, *growth.Tree)) {
	for i, c := range g.cells {
		if c.kind == KindTree {
			fn(Pos{Row: i / g.width, Col: i % g.width}, c.tree)
		}
	}
}

// Snapshot returns every occupied cell in row-major order. Trees are copies.
func (g *Grid) Snapshot() []Slot {
	var slots []Slot
	for i, c := range g.cells {
		if c.IsEmpty() {
			continue
		}
		slots = append(slots, Slot{
			Pos:  Pos{Row: i / g.width, Col: i % g.width},
			Cell: c.clone(),
		})
	}
	return slots
}
