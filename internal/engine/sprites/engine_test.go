package sprites_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/garden-api/internal/engine/sprites"
	"github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
	"github.com/KirkDiggler/garden-api/internal/pkg/idgen"
)

// scriptedRoller replays values in order and wraps around
type scriptedRoller struct {
	values []int
	next   int
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	v := r.values[r.next%len(r.values)]
	r.next++
	return min(max(v, 1), size), nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

type EngineTestSuite struct {
	suite.Suite
	roller *scriptedRoller
	engine *sprites.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) newEngine(roller dice.Roller) *sprites.Engine {
	engine, err := sprites.NewEngine(&sprites.Config{
		Width:             15,
		Height:            8,
		BoxSize:           60,
		Stride:            66,
		MinDisplacement:   5,
		PlacementAttempts: 50,
		Roller:            roller,
		IDGenerator:       idgen.NewSequential("sprite"),
	})
	s.Require().NoError(err)
	return engine
}

func (s *EngineTestSuite) SetupTest() {
	// a roll of 1 maps to fraction 0, i.e. the field origin
	s.roller = &scriptedRoller{values: []int{1}}
	s.engine = s.newEngine(s.roller)
}

func (s *EngineTestSuite) add(category garden.SpriteCategory, level int, x, y float64) sprites.Sprite {
	sp, err := s.engine.AddSprite(category, level, &sprites.Position{X: x, Y: y})
	s.Require().NoError(err)
	return sp
}

func (s *EngineTestSuite) assertNoOverlap() {
	all := s.engine.Snapshot()
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			s.False(s.engine.Overlaps(all[i].Pos, all[j].Pos),
				"%s at %s overlaps %s at %s", all[i].ID, all[i].Pos, all[j].ID, all[j].Pos)
		}
	}
}

func (s *EngineTestSuite) TestConfigValidation() {
	_, err := sprites.NewEngine(&sprites.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestBoxOverlap() {
	s.True(s.engine.Overlaps(sprites.Position{X: 1, Y: 1}, sprites.Position{X: 1.5, Y: 1.5}))
	s.False(s.engine.Overlaps(sprites.Position{X: 1, Y: 1}, sprites.Position{X: 2, Y: 1}), "adjacent cells leave a gap")
	s.False(s.engine.Overlaps(sprites.Position{X: 1, Y: 1}, sprites.Position{X: 1.5, Y: 3}), "one axis only")

	a := sprites.Box{Left: 0, Top: 0, Right: 60, Bottom: 60}
	s.False(a.Overlaps(sprites.Box{Left: 60, Top: 0, Right: 120, Bottom: 60}), "touching edges")
	s.True(a.Contains(0, 0))
	s.False(a.Contains(60, 10))
}

func (s *EngineTestSuite) TestAddValidates() {
	_, err := s.engine.AddSprite("dragon", 1, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.AddSprite(garden.SpriteLimited, 2, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.AddSprite(garden.SpriteClassic, 17, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.AddSprite(garden.SpriteClassic, 1, &sprites.Position{X: 15, Y: 0})
	s.True(errors.IsInvalidArgument(err))
	s.Zero(s.engine.Len())
}

func (s *EngineTestSuite) TestAddSpawnsNearCentre() {
	sp, err := s.engine.AddSprite(garden.SpriteClassic, 1, nil)
	s.Require().NoError(err)

	// centre 7.5,4 minus half of the 6x3 spawn range
	s.Equal(sprites.Position{X: 4.5, Y: 2.5}, sp.Pos)
	s.Equal("sprite_1", sp.ID)
	s.Equal(sprites.EntityType, sp.GetType())
	var entity core.Entity = sp
	s.Equal("sprite_1", entity.GetID())
}

func (s *EngineTestSuite) TestAddDisplacesIncumbent() {
	incumbent := s.add(garden.SpriteShanhai, 3, 7, 4)
	newcomer := s.add(garden.SpriteShiny, 2, 7.3, 4.2)

	got, ok := s.engine.Get(newcomer.Handle)
	s.Require().True(ok)
	s.Equal(sprites.Position{X: 7.3, Y: 4.2}, got.Pos, "newcomer keeps its spot")

	moved, ok := s.engine.Get(incumbent.Handle)
	s.Require().True(ok)
	s.GreaterOrEqual(moved.Pos.Distance(got.Pos), 5.0)
	s.Equal(3, moved.Level)
	s.assertNoOverlap()
}

func (s *EngineTestSuite) TestMoveDisplacesNonMatchingOccupant() {
	mover := s.add(garden.SpriteShiny, 5, 2, 2)
	occupant := s.add(garden.SpriteShiny, 3, 7, 4)
	drop := sprites.Position{X: 7.2, Y: 4.1}

	res, err := s.engine.MoveSprite(sprites.Position{X: 2.1, Y: 2.1}, drop)
	s.Require().NoError(err)

	s.Equal(sprites.MoveDisplaced, res.Outcome)
	s.Equal(mover.Handle, res.Sprite.Handle)
	s.Equal(drop, res.Sprite.Pos)
	s.Require().Len(res.Displaced, 1)
	s.Equal(occupant.Handle, res.Displaced[0].Handle)

	got, _ := s.engine.Get(occupant.Handle)
	s.GreaterOrEqual(got.Pos.Distance(drop), 5.0)
	s.Equal(3, got.Level)
	s.assertNoOverlap()
}

func (s *EngineTestSuite) TestMoveMergesIntoDestination() {
	mover := s.add(garden.SpriteClassic, 4, 1, 1)
	target := s.add(garden.SpriteClassic, 4, 9, 5)

	res, err := s.engine.MoveSprite(sprites.Position{X: 1.2, Y: 1.2}, sprites.Position{X: 9.4, Y: 5.4})
	s.Require().NoError(err)

	s.Equal(sprites.MoveMerged, res.Outcome)
	s.Equal(target.Handle, res.Sprite.Handle)
	s.Equal(5, res.Sprite.Level)
	s.Equal(sprites.Position{X: 9, Y: 5}, res.Sprite.Pos, "destination stays put")
	s.Equal(mover.Handle, res.Consumed)

	_, ok := s.engine.Get(mover.Handle)
	s.False(ok, "mover consumed")
	s.Equal(1, s.engine.Len())
}

func (s *EngineTestSuite) TestMaxLevelDoesNotMerge() {
	s.add(garden.SpriteLimited, 1, 1, 1)
	limited := s.add(garden.SpriteLimited, 1, 9, 5)
	s.add(garden.SpriteShenwu, 16, 1, 6)
	top := s.add(garden.SpriteShenwu, 16, 12, 2)

	res, err := s.engine.MoveSprite(sprites.Position{X: 1.1, Y: 1.1}, sprites.Position{X: 9, Y: 5})
	s.Require().NoError(err)
	s.Equal(sprites.MoveDisplaced, res.Outcome)
	got, _ := s.engine.Get(limited.Handle)
	s.Equal(1, got.Level)

	res, err = s.engine.MoveSprite(sprites.Position{X: 1.1, Y: 6.1}, sprites.Position{X: 12, Y: 2})
	s.Require().NoError(err)
	s.Equal(sprites.MoveDisplaced, res.Outcome)
	got, _ = s.engine.Get(top.Handle)
	s.Equal(16, got.Level)

	s.Equal(4, s.engine.Len())
	s.assertNoOverlap()
}

func (s *EngineTestSuite) TestMoveToEmptySpot() {
	sp := s.add(garden.SpriteClassic, 1, 3, 3)

	res, err := s.engine.MoveSprite(sprites.Position{X: 3.5, Y: 3.5}, sprites.Position{X: 10, Y: 6})
	s.Require().NoError(err)
	s.Equal(sprites.MoveMoved, res.Outcome)
	s.Empty(res.Displaced)

	got, _ := s.engine.Get(sp.Handle)
	s.Equal(sprites.Position{X: 10, Y: 6}, got.Pos)
}

func (s *EngineTestSuite) TestMoveNoOps() {
	sp := s.add(garden.SpriteClassic, 1, 3, 3)

	res, err := s.engine.MoveSprite(sprites.Position{X: 8, Y: 1}, sprites.Position{X: 1, Y: 1})
	s.Require().NoError(err)
	s.Equal(sprites.MoveNone, res.Outcome, "nothing under the cursor")

	res, err = s.engine.MoveSprite(sprites.Position{X: 3.1, Y: 3.1}, sprites.Position{X: 40, Y: 1})
	s.Require().NoError(err)
	s.Equal(sprites.MoveNone, res.Outcome, "outside the garden")

	got, _ := s.engine.Get(sp.Handle)
	s.Equal(sprites.Position{X: 3, Y: 3}, got.Pos)
}

func (s *EngineTestSuite) TestRemoveInvalidatesHandle() {
	first := s.add(garden.SpriteClassic, 1, 3, 3)

	removed, ok := s.engine.RemoveSpriteAt(sprites.Position{X: 3.2, Y: 3.2})
	s.Require().True(ok)
	s.Equal(first.Handle, removed.Handle)

	_, ok = s.engine.RemoveSpriteAt(sprites.Position{X: 3.2, Y: 3.2})
	s.False(ok)

	second := s.add(garden.SpriteClassic, 2, 5, 5)
	s.Equal(first.Handle.Index, second.Handle.Index, "slot reused")
	s.NotEqual(first.Handle, second.Handle)

	_, ok = s.engine.Get(first.Handle)
	s.False(ok, "stale handle")
	s.False(s.engine.Remove(first.Handle))
	s.True(s.engine.Remove(second.Handle))
	s.Zero(s.engine.Len())
}

func (s *EngineTestSuite) TestSpriteAt() {
	sp := s.add(garden.SpriteShiny, 7, 4, 2)

	got, ok := s.engine.SpriteAt(sprites.Position{X: 4.5, Y: 2.5})
	s.Require().True(ok)
	s.Equal(sp.Handle, got.Handle)

	_, ok = s.engine.SpriteAt(sprites.Position{X: 4.95, Y: 2.5})
	s.False(ok, "the gap between boxes belongs to nobody")
}

func (s *EngineTestSuite) TestCrowdedFieldStillSeparates() {
	engine := s.newEngine(dice.DefaultRoller)
	for i := 0; i < 30; i++ {
		_, err := engine.AddSprite(garden.SpriteClassic, 1+i%16, nil)
		s.Require().NoError(err)
	}
	s.engine = engine
	s.assertNoOverlap()

	for i := 0; i < 30; i++ {
		all := engine.Snapshot()
		from := all[i%len(all)].Pos
		to := all[(i+7)%len(all)].Pos
		_, err := engine.MoveSprite(from, to)
		s.Require().NoError(err)
		s.assertNoOverlap()
	}
}
