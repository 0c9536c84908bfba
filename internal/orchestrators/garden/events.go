package garden

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/garden-api/internal/engine/grid"
	"github.com/KirkDiggler/garden-api/internal/engine/sprites"
	entity "github.com/KirkDiggler/garden-api/internal/entities/garden"
)

// Event types published on the bus
const (
	EventTreeReady    = "garden.tree.ready"
	EventItemMerged   = "garden.item.merged"
	EventSpriteMerged = "garden.sprite.merged"
)

// Entity types carried by garden events
const (
	EntityTypeSession = "garden_session"
	EntityTypeCell    = "garden_cell"
)

// SessionRef is the source of every garden event
type SessionRef struct {
	SessionID string
	PlayerID  string
}

// GetID implements core.Entity
func (r SessionRef) GetID() string { return r.SessionID }

// GetType implements core.Entity
func (r SessionRef) GetType() string { return EntityTypeSession }

// CellRef is the target of grid events: the cell and the item it now holds
type CellRef struct {
	SessionID string
	Pos       grid.Pos
	Item      entity.ItemKey
}

// GetID implements core.Entity
func (r CellRef) GetID() string { return fmt.Sprintf("%s/%d:%d", r.SessionID, r.Pos.Row, r.Pos.Col) }

// GetType implements core.Entity
func (r CellRef) GetType() string { return EntityTypeCell }

var (
	_ core.Entity = SessionRef{}
	_ core.Entity = CellRef{}
)

func (o *orchestrator) publishCell(ctx context.Context, eventType string, sess *session, p grid.Pos, key entity.ItemKey) {
	o.publish(ctx, events.NewGameEvent(eventType, sess.ref(), CellRef{SessionID: sess.id, Pos: p, Item: key}))
}

func (o *orchestrator) publishSprite(ctx context.Context, sess *session, survivor sprites.Sprite) {
	o.publish(ctx, events.NewGameEvent(EventSpriteMerged, sess.ref(), survivor))
}

// publish never fails the calling operation; the state change already happened
func (o *orchestrator) publish(ctx context.Context, ev events.Event) {
	if err := o.eventBus.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish garden event",
			"type", ev.Type(),
			"source", ev.Source().GetID(),
			"error", err)
	}
}

// LogEvents subscribes a structured logger to every garden event type
func LogEvents(bus events.EventBus, logger *slog.Logger) {
	handler := func(_ context.Context, ev events.Event) error {
		attrs := []any{"source", ev.Source().GetID()}
		if ev.Target() != nil {
			attrs = append(attrs, "target", ev.Target().GetID())
		}
		switch t := ev.Target().(type) {
		case CellRef:
			attrs = append(attrs, "item", t.Item.String())
		case sprites.Sprite:
			attrs = append(attrs, "category", string(t.Category), "level", t.Level)
		}
		logger.Info(ev.Type(), attrs...)
		return nil
	}
	for _, t := range []string{EventTreeReady, EventItemMerged, EventSpriteMerged} {
		bus.SubscribeFunc(t, 100, handler)
	}
}
