package garden

import (
	"sync"
	"time"

	"github.com/KirkDiggler/garden-api/internal/engine/backpack"
	"github.com/KirkDiggler/garden-api/internal/engine/grid"
	"github.com/KirkDiggler/garden-api/internal/engine/sprites"
	entity "github.com/KirkDiggler/garden-api/internal/entities/garden"
)

// session is the mutable state of one player. Every field below mu is
// guarded by it.
type session struct {
	id        string
	playerID  string
	startedAt time.Time

	mu       sync.Mutex
	grid     *grid.Grid
	backpack *backpack.Backpack
	sprites  *sprites.Engine
}

func (s *session) ref() SessionRef {
	return SessionRef{SessionID: s.id, PlayerID: s.playerID}
}

func (s *session) snapshot(now time.Time, wallet entity.Wallet) *Snapshot {
	snap := &Snapshot{
		SessionID: s.id,
		PlayerID:  s.playerID,
		Width:     s.grid.Width(),
		Height:    s.grid.Height(),
		Wallet:    wallet,
		TakenAt:   now,
	}

	for _, slot := range s.grid.Snapshot() {
		if slot.Cell.IsEmpty() {
			continue
		}
		snap.Cells = append(snap.Cells, cellView(slot, now))
	}
	snap.Backpack = stackViews(s.backpack)
	for _, sp := range s.sprites.Snapshot() {
		snap.Sprites = append(snap.Sprites, spriteView(sp))
	}
	return snap
}

func cellView(slot grid.Slot, now time.Time) CellView {
	v := CellView{
		Pos:   slot.Pos,
		Kind:  slot.Cell.Kind(),
		Level: slot.Cell.Level(),
	}
	if key, ok := slot.Cell.ItemKey(); ok {
		v.Name = key.DisplayName()
	}

	switch slot.Cell.Kind() {
	case grid.KindSeed:
		v.IconKey = "seed"
	case grid.KindTree:
		if sp, ok := entity.TreeSpecies(v.Level); ok {
			v.IconKey = sp.IconKey
		}
		t := slot.Cell.Tree()
		v.Tree = &TreeView{
			MaxFruits:     t.MaxFruits(),
			CurrentFruits: t.CurrentFruits(),
			Growing:       t.IsGrowing(),
			Progress:      t.GrowthProgress(now),
			Remaining:     t.RemainingTime(now),
			RemainingText: t.FormatRemaining(now),
		}
	case grid.KindFruit:
		if sp, ok := entity.FruitSpecies(v.Level); ok {
			v.IconKey = sp.IconKey
		}
	case grid.KindEmpty:
	}
	return v
}

func stackViews(b *backpack.Backpack) []StackView {
	stacks := b.Snapshot()
	out := make([]StackView, 0, len(stacks))
	for _, st := range stacks {
		out = append(out, StackView{
			Key:      st.Key.String(),
			Category: st.Key.Category,
			Level:    st.Key.Level,
			Count:    st.Count,
			Name:     st.Key.DisplayName(),
		})
	}
	return out
}

func spriteView(sp sprites.Sprite) SpriteView {
	return SpriteView{
		ID:       sp.ID,
		Handle:   sp.Handle,
		Category: sp.Category,
		Level:    sp.Level,
		Pos:      sp.Pos,
	}
}
