package v1alpha1

import (
	"strings"

	gardenv1alpha1 "github.com/KirkDiggler/garden-api/internal/api/garden/v1alpha1"
	"github.com/KirkDiggler/garden-api/internal/engine/grid"
	"github.com/KirkDiggler/garden-api/internal/engine/sprites"
	entity "github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
	"github.com/KirkDiggler/garden-api/internal/orchestrators/garden"
)

func convertPos(p grid.Pos) gardenv1alpha1.Pos {
	return gardenv1alpha1.Pos{Row: p.Row, Col: p.Col}
}

func toGridPos(p gardenv1alpha1.Pos) grid.Pos {
	return grid.Pos{Row: p.Row, Col: p.Col}
}

func toPosition(p gardenv1alpha1.Point) sprites.Position {
	return sprites.Position{X: p.X, Y: p.Y}
}

func convertWallet(w entity.Wallet) gardenv1alpha1.Wallet {
	return gardenv1alpha1.Wallet{Primary: w.Primary, Secondary: w.Secondary, Premium: w.Premium}
}

func convertSprite(s garden.SpriteView) gardenv1alpha1.Sprite {
	return gardenv1alpha1.Sprite{
		Id:       s.ID,
		Category: string(s.Category),
		Level:    s.Level,
		Point:    gardenv1alpha1.Point{X: s.Pos.X, Y: s.Pos.Y},
	}
}

func convertStacks(stacks []garden.StackView) []gardenv1alpha1.Stack {
	out := make([]gardenv1alpha1.Stack, 0, len(stacks))
	for _, st := range stacks {
		out = append(out, gardenv1alpha1.Stack{
			Key:      st.Key,
			Category: string(st.Category),
			Level:    st.Level,
			Count:    st.Count,
			Name:     st.Name,
		})
	}
	return out
}

func convertCell(c garden.CellView) gardenv1alpha1.Cell {
	out := gardenv1alpha1.Cell{
		Pos:     convertPos(c.Pos),
		Kind:    c.Kind.String(),
		Level:   c.Level,
		Name:    c.Name,
		IconKey: c.IconKey,
	}
	if c.Tree != nil {
		out.Tree = &gardenv1alpha1.Tree{
			MaxFruits:        c.Tree.MaxFruits,
			CurrentFruits:    c.Tree.CurrentFruits,
			Growing:          c.Tree.Growing,
			Progress:         c.Tree.Progress,
			RemainingSeconds: int64(c.Tree.Remaining.Seconds()),
			Remaining:        c.Tree.RemainingText,
		}
	}
	return out
}

func convertSnapshot(s *garden.Snapshot) *gardenv1alpha1.Snapshot {
	if s == nil {
		return nil
	}

	out := &gardenv1alpha1.Snapshot{
		SessionId: s.SessionID,
		PlayerId:  s.PlayerID,
		Width:     s.Width,
		Height:    s.Height,
		Cells:     make([]gardenv1alpha1.Cell, 0, len(s.Cells)),
		Backpack:  convertStacks(s.Backpack),
		Sprites:   make([]gardenv1alpha1.Sprite, 0, len(s.Sprites)),
		Wallet:    convertWallet(s.Wallet),
		TakenAt:   s.TakenAt.Unix(),
	}
	for _, c := range s.Cells {
		out.Cells = append(out.Cells, convertCell(c))
	}
	for _, sp := range s.Sprites {
		out.Sprites = append(out.Sprites, convertSprite(sp))
	}
	return out
}

func parseZone(z string) (garden.Zone, error) {
	switch zone := garden.Zone(strings.ToLower(z)); zone {
	case garden.ZoneGrid, garden.ZoneBackpack, garden.ZoneField:
		return zone, nil
	}
	return "", errors.InvalidArgumentf("unknown drag zone %q", z).
		WithMeta("allowed", []string{string(garden.ZoneGrid), string(garden.ZoneBackpack), string(garden.ZoneField)})
}

func toDragSource(s gardenv1alpha1.DragSource) (garden.DragSource, error) {
	zone, err := parseZone(s.Zone)
	if err != nil {
		return garden.DragSource{}, err
	}
	return garden.DragSource{
		Zone:     zone,
		Cell:     toGridPos(s.Pos),
		Category: s.Category,
		Level:    s.Level,
		Point:    toPosition(s.Point),
	}, nil
}

func toDragTarget(t gardenv1alpha1.DragTarget) (garden.DragTarget, error) {
	zone, err := parseZone(t.Zone)
	if err != nil {
		return garden.DragTarget{}, err
	}
	return garden.DragTarget{
		Zone:  zone,
		Cell:  toGridPos(t.Pos),
		Point: toPosition(t.Point),
	}, nil
}
