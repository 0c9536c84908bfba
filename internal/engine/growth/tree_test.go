package growth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/garden-api/internal/engine/growth"
	"github.com/KirkDiggler/garden-api/internal/pkg/clock"
)

type TreeTestSuite struct {
	suite.Suite
	clock *clock.Manual
	rules growth.Rules
}

func TestTreeSuite(t *testing.T) {
	suite.Run(t, new(TreeTestSuite))
}

func (s *TreeTestSuite) SetupTest() {
	s.clock = clock.NewManual(time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC))
	s.rules = growth.DefaultRules()
}

func (s *TreeTestSuite) TestRules() {
	s.Equal(38, s.rules.MaxFruits(0))
	s.Equal(30, s.rules.MaxFruits(4))
	s.Equal(8, s.rules.MaxFruits(15))
	s.Equal(2, growth.Rules{FruitCap: 10, FruitStep: 4, FruitFloor: 2}.MaxFruits(3))

	s.Zero(s.rules.GrowDuration(0))
	s.Equal(30*time.Minute, s.rules.GrowDuration(1))
	s.Equal(90*time.Minute, s.rules.GrowDuration(3))
	s.Equal(7*time.Hour+30*time.Minute, s.rules.GrowDuration(15))

	steep := growth.Rules{BaseDuration: 10 * time.Minute, StepDuration: time.Hour}
	s.Zero(steep.GrowDuration(0), "never negative")
}

func (s *TreeTestSuite) TestLevelZeroRegrowsAtTheSameInstant() {
	tree := growth.NewTree(0, s.rules)
	s.Equal(38, tree.HarvestAll(s.clock.Now()))
	s.True(tree.IsGrowing())
	s.Zero(tree.GrowDuration())
	s.Equal(1.0, tree.GrowthProgress(s.clock.Now()))

	s.True(tree.UpdateGrowthStatus(s.clock.Now()))
	s.Equal(growth.StateReady, tree.State())
	s.Equal(38, tree.CurrentFruits())
}

func (s *TreeTestSuite) TestNewTreePanicsOutsideTable() {
	s.Panics(func() { growth.NewTree(-1, s.rules) })
	s.Panics(func() { growth.NewTree(16, s.rules) })
}

func (s *TreeTestSuite) TestHarvestOneUntilGrowingThenRegrow() {
	tree := growth.NewTree(1, s.rules)
	s.Equal(36, tree.CurrentFruits())
	s.Equal(growth.StateReady, tree.State())

	for i := 0; i < 35; i++ {
		s.True(tree.HarvestOne(s.clock.Now()))
		s.False(tree.IsGrowing())
	}
	s.True(tree.HarvestOne(s.clock.Now()))
	s.True(tree.IsGrowing())
	s.Equal(0, tree.CurrentFruits())
	s.Equal(s.clock.Now(), tree.GrowStartTime())
	s.Equal(30*time.Minute, tree.GrowDuration())

	s.False(tree.HarvestOne(s.clock.Now()), "growing trees give nothing")
	s.Zero(tree.HarvestAll(s.clock.Now()))

	s.clock.Advance(29 * time.Minute)
	s.False(tree.UpdateGrowthStatus(s.clock.Now()))
	s.True(tree.IsGrowing())

	s.clock.Advance(2 * time.Minute)
	s.True(tree.UpdateGrowthStatus(s.clock.Now()))
	s.False(tree.IsGrowing())
	s.Equal(36, tree.CurrentFruits())
}

func (s *TreeTestSuite) TestUpdateIsIdempotent() {
	tree := growth.NewTree(2, s.rules)
	s.Equal(34, tree.HarvestAll(s.clock.Now()))

	s.clock.Advance(10 * time.Hour)
	s.True(tree.UpdateGrowthStatus(s.clock.Now()))
	first := tree.Clone()

	s.False(tree.UpdateGrowthStatus(s.clock.Now()))
	s.Equal(first, tree)

	s.True(tree.HarvestOne(s.clock.Now()))
	s.Equal(33, tree.CurrentFruits())
}

func (s *TreeTestSuite) TestCatchUpAfterLongGap() {
	tree := growth.NewTree(5, s.rules)
	tree.HarvestAll(s.clock.Now())

	s.clock.Advance(72 * time.Hour)
	s.True(tree.UpdateGrowthStatus(s.clock.Now()))
	s.Equal(tree.MaxFruits(), tree.CurrentFruits())
}

func (s *TreeTestSuite) TestInstantGrowth() {
	tree := growth.NewTree(1, s.rules)
	s.False(tree.InstantGrowth(), "ready tree")

	tree.HarvestAll(s.clock.Now())
	s.True(tree.InstantGrowth())
	s.False(tree.IsGrowing())
	s.Equal(36, tree.CurrentFruits())
	s.True(tree.GrowStartTime().IsZero())
}

func (s *TreeTestSuite) TestProgressAndRemaining() {
	tree := growth.NewTree(3, s.rules)
	s.Equal(1.0, tree.GrowthProgress(s.clock.Now()))
	s.Zero(tree.RemainingTime(s.clock.Now()))

	tree.HarvestAll(s.clock.Now())
	s.Equal(0.0, tree.GrowthProgress(s.clock.Now()))
	s.Equal(90*time.Minute, tree.RemainingTime(s.clock.Now()))
	s.Equal("01:30:00", tree.FormatRemaining(s.clock.Now()))

	s.clock.Advance(45 * time.Minute)
	s.InDelta(0.5, tree.GrowthProgress(s.clock.Now()), 1e-9)
	s.Equal("00:45:00", tree.FormatRemaining(s.clock.Now()))

	s.clock.Advance(2 * time.Hour)
	s.Equal(1.0, tree.GrowthProgress(s.clock.Now()))
	s.Zero(tree.RemainingTime(s.clock.Now()))
}

func (s *TreeTestSuite) TestFormatDuration() {
	s.Equal("00:00:00", growth.FormatDuration(0))
	s.Equal("00:00:01", growth.FormatDuration(200*time.Millisecond))
	s.Equal("10:05:09", growth.FormatDuration(10*time.Hour+5*time.Minute+9*time.Second))
	s.Equal("00:00:00", growth.FormatDuration(-time.Second))
}
