// Package growth implements the per-tree fruit and regrowth state machine.
//
// A tree is Ready while it holds fruit and Growing once the last fruit is taken.
// Regrowth is plain data: a start timestamp and a duration. Every time-dependent
// method takes the current time explicitly, so a poll after any gap catches up in
// one step and repeated polls never apply the same regrowth twice.
package growth

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/garden-api/internal/entities/garden"
)

// Rules are the deployment constants for fruit capacity and regrowth time
type Rules struct {
	// BaseDuration is the regrowth time of a level 1 tree
	BaseDuration time.Duration
	// StepDuration is added per level above 1
	StepDuration time.Duration
	FruitCap     int
	FruitStep    int
	FruitFloor   int
}

// DefaultRules returns 30m + 30m/level regrowth and max(2, 38-2*level) fruit
func DefaultRules() Rules {
	return Rules{
		BaseDuration: 30 * time.Minute,
		StepDuration: 30 * time.Minute,
		FruitCap:     38,
		FruitStep:    2,
		FruitFloor:   2,
	}
}

// MaxFruits returns the fruit capacity of a tree at level
func (r Rules) MaxFruits(level int) int {
	return max(r.FruitFloor, r.FruitCap-r.FruitStep*level)
}

// GrowDuration returns the regrowth time of a tree at level:
// base + step*(level-1), floored at zero. With the default rules a level 0
// tree regrows instantly.
func (r Rules) GrowDuration(level int) time.Duration {
	return max(r.BaseDuration+r.StepDuration*time.Duration(level-1), 0)
}

// State is the observable phase of a tree
type State int

// Tree states
const (
	StateReady State = iota
	StateGrowing
)

func (s State) String() string {
	if s == StateGrowing {
		return "growing"
	}
	return "ready"
}

// Tree is one fruit tree on the grid
type Tree struct {
	level         int
	maxFruits     int
	currentFruits int
	isGrowing     bool
	growStart     time.Time
	growDuration  time.Duration
	rules         Rules
}

// NewTree returns a fully laden tree. It panics on a level outside the tree
// table; callers validate levels at the boundary.
func NewTree(level int, rules Rules) *Tree {
	if !garden.ValidTreeLevel(level) {
		panic(fmt.Sprintf("growth: tree level %d out of range", level))
	}
	maxFruits := rules.MaxFruits(level)
	return &Tree{
		level:         level,
		maxFruits:     maxFruits,
		currentFruits: maxFruits,
		rules:         rules,
	}
}

// Level returns the species level
func (t *Tree) Level() int { return t.level }

// MaxFruits returns the capacity
func (t *Tree) MaxFruits() int { return t.maxFruits }

// CurrentFruits returns the fruit left on the tree
func (t *Tree) CurrentFruits() int { return t.currentFruits }

// IsGrowing reports whether the tree is regrowing
func (t *Tree) IsGrowing() bool { return t.isGrowing }

// GrowStartTime is the start of the current regrowth, zero when Ready
func (t *Tree) GrowStartTime() time.Time { return t.growStart }

// GrowDuration is the length of the current regrowth, zero when Ready
func (t *Tree) GrowDuration() time.Duration { return t.growDuration }

// State returns Ready or Growing
func (t *Tree) State() State {
	if t.isGrowing {
		return StateGrowing
	}
	return StateReady
}

// HarvestOne takes a single fruit. Taking the last fruit starts regrowth at now.
func (t *Tree) HarvestOne(now time.Time) bool {
	if t.isGrowing || t.currentFruits == 0 {
		return false
	}
	t.currentFruits--
	if t.currentFruits == 0 {
		t.startGrowing(now)
	}
	return true
}

// HarvestAll takes every fruit and starts regrowth. Returns the count taken.
func (t *Tree) HarvestAll(now time.Time) int {
	if t.isGrowing || t.currentFruits == 0 {
		return 0
	}
	n := t.currentFruits
	t.currentFruits = 0
	t.startGrowing(now)
	return n
}

// UpdateGrowthStatus completes regrowth once now is at least growDuration past
// the start. It returns true only on the call that performed the transition.
func (t *Tree) UpdateGrowthStatus(now time.Time) bool {
	if !t.isGrowing {
		return false
	}
	if now.Sub(t.growStart) < t.growDuration {
		return false
	}
	t.finishGrowing()
	return true
}

// InstantGrowth completes regrowth immediately. No-op when Ready.
func (t *Tree) InstantGrowth() bool {
	if !t.isGrowing {
		return false
	}
	t.finishGrowing()
	return true
}

// GrowthProgress returns elapsed/duration clamped to [0,1], 1 when Ready
func (t *Tree) GrowthProgress(now time.Time) float64 {
	if !t.isGrowing || t.growDuration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.growStart)) / float64(t.growDuration)
	return min(max(p, 0), 1)
}

// RemainingTime returns the regrowth time left, floored at zero
func (t *Tree) RemainingTime(now time.Time) time.Duration {
	if !t.isGrowing {
		return 0
	}
	return max(t.growDuration-now.Sub(t.growStart), 0)
}

// FormatRemaining renders RemainingTime as HH:MM:SS, rounding seconds up
func (t *Tree) FormatRemaining(now time.Time) string {
	return FormatDuration(t.RemainingTime(now))
}

// FormatDuration renders d as HH:MM:SS with partial seconds rounded up
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

func (t *Tree) startGrowing(now time.Time) {
	t.isGrowing = true
	t.growStart = now
	t.growDuration = t.rules.GrowDuration(t.level)
}

func (t *Tree) finishGrowing() {
	t.isGrowing = false
	t.currentFruits = t.maxFruits
	t.growStart = time.Time{}
	t.growDuration = 0
}

// Clone returns an independent copy
func (t *Tree) Clone() *Tree {
	c := *t
	return &c
}
