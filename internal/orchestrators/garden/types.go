package garden

import (
	"time"

	"github.com/KirkDiggler/garden-api/internal/engine/grid"
	"github.com/KirkDiggler/garden-api/internal/engine/sprites"
	entity "github.com/KirkDiggler/garden-api/internal/entities/garden"
)

// Zone is where a drag starts or ends
type Zone string

// Drag zones
const (
	ZoneGrid     Zone = "grid"
	ZoneBackpack Zone = "backpack"
	ZoneField    Zone = "field"
)

// Snapshot is a read-only copy of a session
type Snapshot struct {
	SessionID string
	PlayerID  string
	Width     int
	Height    int
	// Cells lists occupied cells in row-major order
	Cells    []CellView
	Backpack []StackView
	Sprites  []SpriteView
	Wallet   entity.Wallet
	TakenAt  time.Time
}

// CellView describes one occupied grid cell
type CellView struct {
	Pos     grid.Pos
	Kind    grid.Kind
	Level   int
	Name    string
	IconKey string
	Tree    *TreeView
}

// TreeView is the growth state of a tree at snapshot time
type TreeView struct {
	MaxFruits     int
	CurrentFruits int
	Growing       bool
	Progress      float64
	Remaining     time.Duration
	RemainingText string
}

// StackView is one backpack stack
type StackView struct {
	Key      string
	Category entity.Category
	Level    int
	Count    int
	Name     string
}

// SpriteView is one sprite
type SpriteView struct {
	ID       string
	Handle   sprites.Handle
	Category entity.SpriteCategory
	Level    int
	Pos      sprites.Position
}

// StartSessionInput opens or resumes the session of a player
type StartSessionInput struct {
	PlayerID string
}

// StartSessionOutput carries the session snapshot
type StartSessionOutput struct {
	Snapshot *Snapshot
	// Resumed is true when the player already had a session
	Resumed bool
}

// EndSessionInput closes a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput is empty
type EndSessionOutput struct{}

// GetSnapshotInput names the session to copy
type GetSnapshotInput struct {
	SessionID string
}

// GetSnapshotOutput carries the snapshot
type GetSnapshotOutput struct {
	Snapshot *Snapshot
}

// GenerateSeedInput drops a seed on the first empty cell
type GenerateSeedInput struct {
	SessionID string
}

// GenerateSeedOutput reports where the seed landed
type GenerateSeedOutput struct {
	Applied bool
	Pos     grid.Pos
}

// GenerateTreeInput drops a fresh tree of Level on the first empty cell
type GenerateTreeInput struct {
	SessionID string
	Level     int
}

// GenerateTreeOutput reports where the tree landed
type GenerateTreeOutput struct {
	Applied bool
	Pos     grid.Pos
}

// GenerateSpriteInput adds a sprite. A nil Position spawns near the centre.
type GenerateSpriteInput struct {
	SessionID string
	Category  string
	Level     int
	Position  *sprites.Position
}

// GenerateSpriteOutput holds the new sprite
type GenerateSpriteOutput struct {
	Sprite SpriteView
}

// PickFruitInput takes one fruit from the tree at Pos
type PickFruitInput struct {
	SessionID string
	Pos       grid.Pos
}

// PickFruitOutput reports where the fruit was placed
type PickFruitOutput struct {
	Applied    bool
	FruitPos   grid.Pos
	FruitLevel int
}

// HarvestTreeInput takes every fruit from the tree at Pos into the backpack
type HarvestTreeInput struct {
	SessionID string
	Pos       grid.Pos
}

// HarvestTreeOutput reports the harvested amount
type HarvestTreeOutput struct {
	Applied bool
	Key     entity.ItemKey
	Count   int
}

// HarvestAllInput moves grid fruit and seeds into the backpack
type HarvestAllInput struct {
	SessionID string
}

// HarvestAllOutput counts what moved
type HarvestAllOutput struct {
	Seeds  int
	Fruits int
}

// CombineInventoryInput combines backpack pairs
type CombineInventoryInput struct {
	SessionID string
}

// CombineInventoryOutput reports whether anything combined
type CombineInventoryOutput struct {
	Combined bool
	Backpack []StackView
}

// SellInput sells every grid fruit of Level
type SellInput struct {
	SessionID string
	Level     int
}

// SellOutput reports the sale
type SellOutput struct {
	Count  int
	Amount int64
	Wallet entity.Wallet
}

// PlaceFromInventoryInput moves one backpack item onto the grid. A nil Target
// uses the first empty cell.
type PlaceFromInventoryInput struct {
	SessionID string
	Category  string
	Level     int
	Target    *grid.Pos
}

// PlaceFromInventoryOutput reports the placement
type PlaceFromInventoryOutput struct {
	Applied bool
	Pos     grid.Pos
	// Upgraded is true when a backpack tree merged into a grid tree
	Upgraded bool
}

// DragSource is where a drag starts. Cell is read for ZoneGrid, Category and
// Level for ZoneBackpack, Point for ZoneField.
type DragSource struct {
	Zone     Zone
	Cell     grid.Pos
	Category string
	Level    int
	Point    sprites.Position
}

// DragTarget is where a drag ends
type DragTarget struct {
	Zone  Zone
	Cell  grid.Pos
	Point sprites.Position
}

// DragDropInput routes a drag to the matching operation. A nil Target is a
// cancelled drag.
type DragDropInput struct {
	SessionID string
	Source    DragSource
	Target    *DragTarget
}

// DragDropOutput reports what the drag did
type DragDropOutput struct {
	Applied bool
	// Result is one of none, merged, moved, swapped, placed, upgraded, displaced
	Result string
}

// RemoveSpriteInput deletes the sprite under Point
type RemoveSpriteInput struct {
	SessionID string
	Point     sprites.Position
}

// RemoveSpriteOutput holds the removed sprite, if any
type RemoveSpriteOutput struct {
	Applied bool
	Sprite  SpriteView
}

// SpeedUpInput finishes regrowth of the tree at Pos for primary currency
type SpeedUpInput struct {
	SessionID string
	Pos       grid.Pos
}

// SpeedUpOutput reports the charge
type SpeedUpOutput struct {
	Applied bool
	Cost    int64
	Wallet  entity.Wallet
}

// TickInput is empty
type TickInput struct{}

// TickOutput counts the trees that finished regrowing
type TickOutput struct {
	Sessions   int
	TreesReady int
}
