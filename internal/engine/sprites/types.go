package sprites

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/garden-api/internal/entities/garden"
)

// EntityType is the core.Entity type reported by sprites
const EntityType = "sprite"

// Position is a continuous garden coordinate in cell units
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the euclidean distance between p and q
func (p Position) Distance(q Position) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// Box is an axis-aligned rectangle in pixel space, right and bottom exclusive
type Box struct {
	Left, Top, Right, Bottom float64
}

// Overlaps is the AABB test: the projections overlap on both axes
func (b Box) Overlaps(o Box) bool {
	return b.Left < o.Right && o.Left < b.Right &&
		b.Top < o.Bottom && o.Top < b.Bottom
}

// Contains reports whether the pixel point (x, y) lies inside the box
func (b Box) Contains(x, y float64) bool {
	return x >= b.Left && x < b.Right && y >= b.Top && y < b.Bottom
}

// Handle refers to a sprite slot. A handle goes stale once its sprite is
// removed, even if the slot is reused.
type Handle struct {
	Index      uint32 `json:"index"`
	Generation uint32 `json:"generation"`
}

// IsZero reports whether h was never issued
func (h Handle) IsZero() bool { return h.Generation == 0 }

func (h Handle) String() string {
	return fmt.Sprintf("%d#%d", h.Index, h.Generation)
}

// Sprite is a read-only view of a companion
type Sprite struct {
	Handle   Handle
	ID       string
	Category garden.SpriteCategory
	Level    int
	Pos      Position
}

// GetID implements core.Entity
func (s Sprite) GetID() string { return s.ID }

// GetType implements core.Entity
func (s Sprite) GetType() string { return EntityType }

// CanMergeWith reports whether dropping s onto o levels o up
func (s Sprite) CanMergeWith(o Sprite) bool {
	return s.Category == o.Category && s.Level == o.Level && o.Level < o.Category.MaxLevel()
}

// MoveOutcome describes what MoveSprite did
type MoveOutcome int

// Move outcomes
const (
	MoveNone MoveOutcome = iota
	MoveMoved
	MoveDisplaced
	MoveMerged
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveMoved:
		return "moved"
	case MoveDisplaced:
		return "displaced"
	case MoveMerged:
		return "merged"
	default:
		return "none"
	}
}

// MoveResult reports a move. Sprite is the survivor: the mover, or the merge
// target when the mover was consumed.
type MoveResult struct {
	Outcome   MoveOutcome
	Sprite    Sprite
	Consumed  Handle
	Displaced []Sprite
}
