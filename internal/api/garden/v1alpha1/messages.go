package v1alpha1

// Pos addresses a grid cell
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Point is a continuous sprite-field coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Wallet holds the three currency balances
type Wallet struct {
	Primary   int64 `json:"primary"`
	Secondary int64 `json:"secondary"`
	Premium   int64 `json:"premium"`
}

// Tree is the growth state of a tree cell
type Tree struct {
	MaxFruits        int     `json:"max_fruits"`
	CurrentFruits    int     `json:"current_fruits"`
	Growing          bool    `json:"growing"`
	Progress         float64 `json:"progress"`
	RemainingSeconds int64   `json:"remaining_seconds"`
	Remaining        string  `json:"remaining"`
}

// Cell is an occupied grid cell
type Cell struct {
	Pos     Pos    `json:"pos"`
	Kind    string `json:"kind"`
	Level   int    `json:"level"`
	Name    string `json:"name"`
	IconKey string `json:"icon_key"`
	Tree    *Tree  `json:"tree,omitempty"`
}

// Stack is a backpack stack
type Stack struct {
	Key      string `json:"key"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Count    int    `json:"count"`
	Name     string `json:"name"`
}

// Sprite is a companion on the sprite field
type Sprite struct {
	Id       string `json:"id"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Point    Point  `json:"point"`
}

// Snapshot is the full state of a session
type Snapshot struct {
	SessionId string   `json:"session_id"`
	PlayerId  string   `json:"player_id"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Cells     []Cell   `json:"cells"`
	Backpack  []Stack  `json:"backpack"`
	Sprites   []Sprite `json:"sprites"`
	Wallet    Wallet   `json:"wallet"`
	TakenAt   int64    `json:"taken_at"`
}

type StartSessionRequest struct {
	PlayerId string `json:"player_id"`
}

type StartSessionResponse struct {
	Snapshot *Snapshot `json:"snapshot"`
	Resumed  bool      `json:"resumed"`
}

type EndSessionRequest struct {
	SessionId string `json:"session_id"`
}

type EndSessionResponse struct{}

type GetSnapshotRequest struct {
	SessionId string `json:"session_id"`
}

type GetSnapshotResponse struct {
	Snapshot *Snapshot `json:"snapshot"`
}

type GenerateSeedRequest struct {
	SessionId string `json:"session_id"`
}

type GenerateSeedResponse struct {
	Applied bool `json:"applied"`
	Pos     Pos  `json:"pos"`
}

type GenerateTreeRequest struct {
	SessionId string `json:"session_id"`
	Level     int    `json:"level"`
}

type GenerateTreeResponse struct {
	Applied bool `json:"applied"`
	Pos     Pos  `json:"pos"`
}

// GenerateSpriteRequest spawns near the centre when Point is nil
type GenerateSpriteRequest struct {
	SessionId string `json:"session_id"`
	Category  string `json:"category"`
	Level     int    `json:"level"`
	Point     *Point `json:"point,omitempty"`
}

type GenerateSpriteResponse struct {
	Sprite Sprite `json:"sprite"`
}

type PickFruitRequest struct {
	SessionId string `json:"session_id"`
	Pos       Pos    `json:"pos"`
}

type PickFruitResponse struct {
	Applied    bool `json:"applied"`
	FruitPos   Pos  `json:"fruit_pos"`
	FruitLevel int  `json:"fruit_level"`
}

type HarvestTreeRequest struct {
	SessionId string `json:"session_id"`
	Pos       Pos    `json:"pos"`
}

type HarvestTreeResponse struct {
	Applied bool   `json:"applied"`
	Key     string `json:"key"`
	Count   int    `json:"count"`
}

type HarvestAllRequest struct {
	SessionId string `json:"session_id"`
}

type HarvestAllResponse struct {
	Seeds  int `json:"seeds"`
	Fruits int `json:"fruits"`
}

type CombineInventoryRequest struct {
	SessionId string `json:"session_id"`
}

type CombineInventoryResponse struct {
	Combined bool    `json:"combined"`
	Backpack []Stack `json:"backpack"`
}

type SellRequest struct {
	SessionId string `json:"session_id"`
	Level     int    `json:"level"`
}

type SellResponse struct {
	Count  int    `json:"count"`
	Amount int64  `json:"amount"`
	Wallet Wallet `json:"wallet"`
}

// PlaceFromInventoryRequest uses the first empty cell when Target is nil
type PlaceFromInventoryRequest struct {
	SessionId string `json:"session_id"`
	Category  string `json:"category"`
	Level     int    `json:"level"`
	Target    *Pos   `json:"target,omitempty"`
}

type PlaceFromInventoryResponse struct {
	Applied  bool `json:"applied"`
	Pos      Pos  `json:"pos"`
	Upgraded bool `json:"upgraded"`
}

// DragSource names where a drag starts. Zone is grid, backpack or field.
type DragSource struct {
	Zone     string `json:"zone"`
	Pos      Pos    `json:"pos"`
	Category string `json:"category,omitempty"`
	Level    int    `json:"level,omitempty"`
	Point    Point  `json:"point"`
}

// DragTarget names where a drag ends
type DragTarget struct {
	Zone  string `json:"zone"`
	Pos   Pos    `json:"pos"`
	Point Point  `json:"point"`
}

type DragDropRequest struct {
	SessionId string      `json:"session_id"`
	Source    DragSource  `json:"source"`
	Target    *DragTarget `json:"target,omitempty"`
}

type DragDropResponse struct {
	Applied bool   `json:"applied"`
	Result  string `json:"result"`
}

type RemoveSpriteRequest struct {
	SessionId string `json:"session_id"`
	Point     Point  `json:"point"`
}

type RemoveSpriteResponse struct {
	Applied bool    `json:"applied"`
	Sprite  *Sprite `json:"sprite,omitempty"`
}

type SpeedUpRequest struct {
	SessionId string `json:"session_id"`
	Pos       Pos    `json:"pos"`
}

type SpeedUpResponse struct {
	Applied bool   `json:"applied"`
	Cost    int64  `json:"cost"`
	Wallet  Wallet `json:"wallet"`
}
