package garden

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/garden-api/internal/engine/grid"
	"github.com/KirkDiggler/garden-api/internal/engine/growth"
	entity "github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
)

func (o *orchestrator) GenerateSeed(_ context.Context, input *GenerateSeedInput) (*GenerateSeedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &GenerateSeedOutput{}
	err := o.withSession(input.SessionID, func(sess *session) error {
		out.Pos, out.Applied = sess.grid.PlaceFirstEmpty(grid.SeedCell())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (o *orchestrator) GenerateTree(_ context.Context, input *GenerateTreeInput) (*GenerateTreeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !entity.ValidTreeLevel(input.Level) {
		return nil, errors.InvalidArgumentf("tree level %d out of range (%d-%d)",
			input.Level, entity.MinLevel, entity.MaxTreeLevel)
	}

	out := &GenerateTreeOutput{}
	err := o.withSession(input.SessionID, func(sess *session) error {
		out.Pos, out.Applied = sess.grid.PlaceFirstEmpty(grid.TreeCell(growth.NewTree(input.Level, o.rules)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PickFruit moves one fruit from a ready tree onto the first empty cell. A full
// grid leaves the tree untouched.
func (o *orchestrator) PickFruit(ctx context.Context, input *PickFruitInput) (*PickFruitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &PickFruitOutput{}
	err := o.withSession(input.SessionID, func(sess *session) error {
		t, err := treeAt(sess.grid, input.Pos)
		if err != nil || t == nil {
			return err
		}

		now := o.clock.Now()
		o.reconcile(ctx, sess, input.Pos, t, now)

		dst, ok := sess.grid.FirstEmpty()
		if !ok {
			return nil
		}
		if !t.HarvestOne(now) {
			return nil
		}

		sess.grid.Place(dst, grid.FruitCell(t.Level()))
		out.Applied = true
		out.FruitPos = dst
		out.FruitLevel = t.Level()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (o *orchestrator) HarvestTree(ctx context.Context, input *HarvestTreeInput) (*HarvestTreeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &HarvestTreeOutput{}
	err := o.withSession(input.SessionID, func(sess *session) error {
		t, err := treeAt(sess.grid, input.Pos)
		if err != nil || t == nil {
			return err
		}

		now := o.clock.Now()
		o.reconcile(ctx, sess, input.Pos, t, now)

		n := t.HarvestAll(now)
		if n == 0 {
			return nil
		}
		out.Key = entity.FruitKey(t.Level())
		out.Count = n
		out.Applied = true
		sess.backpack.AddItem(out.Key, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (o *orchestrator) HarvestAll(_ context.Context, input *HarvestAllInput) (*HarvestAllOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &HarvestAllOutput{}
	err := o.withSession(input.SessionID, func(sess *session) error {
		res := sess.grid.HarvestAll(sess.backpack)
		out.Seeds = res.Seeds
		out.Fruits = res.Total() - res.Seeds
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (o *orchestrator) CombineInventory(_ context.Context, input *CombineInventoryInput) (*CombineInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &CombineInventoryOutput{}
	err := o.withSession(input.SessionID, func(sess *session) error {
		out.Combined = sess.backpack.CombineAdjacentPairs()
		out.Backpack = stackViews(sess.backpack)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (o *orchestrator) PlaceFromInventory(ctx context.Context, input *PlaceFromInventoryInput) (*PlaceFromInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	key, err := parseItem(input.Category, input.Level)
	if err != nil {
		return nil, err
	}

	out := &PlaceFromInventoryOutput{}
	err = o.withSession(input.SessionID, func(sess *session) error {
		*out = o.placeFromInventory(ctx, sess, key, input.Target)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// placeFromInventory debits the backpack only after the grid accepted the item
func (o *orchestrator) placeFromInventory(ctx context.Context, sess *session, key entity.ItemKey, target *grid.Pos) PlaceFromInventoryOutput {
	var out PlaceFromInventoryOutput
	if sess.backpack.Count(key) < 1 {
		return out
	}

	switch {
	case target == nil:
		out.Pos, out.Applied = sess.grid.PlaceFirstEmpty(o.cellFor(key))
	default:
		out.Pos = *target
		cell, ok := sess.grid.Cell(*target)
		switch {
		case !ok:
		case cell.IsEmpty():
			out.Applied = sess.grid.Place(*target, o.cellFor(key))
		case key.Category == entity.CategoryTree:
			out.Upgraded = sess.grid.UpgradeTree(*target, key.Level)
			out.Applied = out.Upgraded
		}
	}

	if !out.Applied {
		return PlaceFromInventoryOutput{}
	}
	sess.backpack.RemoveItem(key, 1)

	if out.Upgraded {
		o.publishCell(ctx, EventItemMerged, sess, out.Pos, entity.TreeKey(key.Level+1))
	}
	slog.Debug("placed item from backpack",
		"session_id", sess.id,
		"item", key.String(),
		"pos", out.Pos.String(),
		"upgraded", out.Upgraded)
	return out
}

func (o *orchestrator) cellFor(key entity.ItemKey) grid.Cell {
	switch key.Category {
	case entity.CategoryTree:
		return grid.TreeCell(growth.NewTree(key.Level, o.rules))
	case entity.CategoryFruit:
		return grid.FruitCell(key.Level)
	default:
		return grid.SeedCell()
	}
}

func (o *orchestrator) DragDrop(ctx context.Context, input *DragDropInput) (*DragDropOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var key entity.ItemKey
	if input.Source.Zone == ZoneBackpack {
		k, err := parseItem(input.Source.Category, input.Source.Level)
		if err != nil {
			return nil, err
		}
		key = k
	}

	out := &DragDropOutput{Result: "none"}
	err := o.withSession(input.SessionID, func(sess *session) error {
		target := input.Target
		if target == nil {
			return nil
		}

		switch {
		case input.Source.Zone == ZoneGrid && target.Zone == ZoneGrid:
			o.dragGrid(ctx, sess, input.Source.Cell, target.Cell, out)
		case input.Source.Zone == ZoneBackpack && target.Zone == ZoneGrid:
			cell := target.Cell
			res := o.placeFromInventory(ctx, sess, key, &cell)
			out.Applied = res.Applied
			switch {
			case res.Upgraded:
				out.Result = "upgraded"
			case res.Applied:
				out.Result = "placed"
			}
		case input.Source.Zone == ZoneField && target.Zone == ZoneField:
			return o.dragSprite(ctx, sess, input.Source.Point, target.Point, out)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (o *orchestrator) dragGrid(ctx context.Context, sess *session, src, dst grid.Pos, out *DragDropOutput) {
	outcome := sess.grid.MergeOrSwap(src, dst)
	out.Result = outcome.String()
	out.Applied = outcome != grid.OutcomeNone

	if outcome == grid.OutcomeMerged {
		merged, _ := sess.grid.Cell(dst)
		if key, ok := merged.ItemKey(); ok {
			o.publishCell(ctx, EventItemMerged, sess, dst, key)
		}
	}
}

// reconcile finishes a regrowth that completed since the last tick, so an
// interaction never waits for the ticker
func (o *orchestrator) reconcile(ctx context.Context, sess *session, p grid.Pos, t *growth.Tree, now time.Time) {
	if t.UpdateGrowthStatus(now) {
		o.publishCell(ctx, EventTreeReady, sess, p, entity.TreeKey(t.Level()))
	}
}

// treeAt returns the tree at p, or nil when the cell holds something else.
// Only an out-of-bounds position is an error.
func treeAt(g *grid.Grid, p grid.Pos) (*growth.Tree, error) {
	if !g.InBounds(p) {
		return nil, errors.OutOfBounds(p.Row, p.Col, g.Width(), g.Height())
	}
	return g.TreeAt(p), nil
}

func parseItem(category string, level int) (entity.ItemKey, error) {
	c, ok := entity.ParseCategory(category)
	if !ok {
		return entity.ItemKey{}, errors.InvalidArgumentf("unknown item category %q", category)
	}
	key := entity.NewItemKey(c, level)
	if !key.Valid() {
		return entity.ItemKey{}, errors.InvalidArgumentf("level %d out of range for %s", level, c)
	}
	return key, nil
}
