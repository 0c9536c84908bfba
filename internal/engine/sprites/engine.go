// Package sprites implements free-roaming companions in continuous space.
//
// Sprites occupy fixed-size boxes anchored at position*stride. After every
// add or move no two boxes overlap: conflicts push the incumbent to a random
// spot at least MinDisplacement away instead of rejecting the newcomer.
// Sprites live in an arena and are addressed by generation-checked handles.
package sprites

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
	"github.com/KirkDiggler/garden-api/internal/pkg/idgen"
)

// rollResolution is the die size used to draw uniform fractions
const rollResolution = 10000

// scanStep is the grid pitch of the deterministic placement fallback
const scanStep = 0.5

// Config configures the sprite field
type Config struct {
	// Width and Height bound sprite positions to [0, Width-1] x [0, Height-1]
	Width  float64
	Height float64
	// BoxSize is the side of a sprite box in pixels
	BoxSize float64
	// Stride converts positions to pixels
	Stride            float64
	MinDisplacement   float64
	PlacementAttempts int
	Roller            dice.Roller
	IDGenerator       idgen.Generator
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Width < 1 {
		vb.Field("Width", "must be at least 1")
	}
	if c.Height < 1 {
		vb.Field("Height", "must be at least 1")
	}
	if c.BoxSize <= 0 {
		vb.Field("BoxSize", "must be positive")
	}
	if c.Stride <= 0 {
		vb.Field("Stride", "must be positive")
	}
	if c.MinDisplacement <= 0 {
		vb.Field("MinDisplacement", "must be positive")
	}
	if c.PlacementAttempts <= 0 {
		vb.Field("PlacementAttempts", "must be positive")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type slot struct {
	sprite     Sprite
	generation uint32
	alive      bool
}

// Engine owns every sprite of one garden. It is not safe for concurrent use.
type Engine struct {
	cfg   Config
	slots []slot
	free  []uint32
}

// NewEngine creates an empty sprite field
func NewEngine(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Engine{cfg: *cfg}, nil
}

// MaxX is the largest legal X
func (e *Engine) MaxX() float64 { return math.Max(e.cfg.Width-1, 0) }

// MaxY is the largest legal Y
func (e *Engine) MaxY() float64 { return math.Max(e.cfg.Height-1, 0) }

// InField reports whether p is a legal sprite position
func (e *Engine) InField(p Position) bool {
	return p.X >= 0 && p.X <= e.MaxX() && p.Y >= 0 && p.Y <= e.MaxY()
}

// BoxAt returns the pixel box of a sprite anchored at p
func (e *Engine) BoxAt(p Position) Box {
	left, top := p.X*e.cfg.Stride, p.Y*e.cfg.Stride
	return Box{Left: left, Top: top, Right: left + e.cfg.BoxSize, Bottom: top + e.cfg.BoxSize}
}

// Overlaps reports whether sprites anchored at a and b collide. This is the
// only collision test the engine uses.
func (e *Engine) Overlaps(a, b Position) bool {
	return e.BoxAt(a).Overlaps(e.BoxAt(b))
}

// Len returns the number of live sprites
func (e *Engine) Len() int {
	return len(e.slots) - len(e.free)
}

// Get resolves a handle
func (e *Engine) Get(h Handle) (Sprite, bool) {
	s := e.lookup(h)
	if s == nil {
		return Sprite{}, false
	}
	return s.sprite, true
}

func (e *Engine) lookup(h Handle) *slot {
	if h.IsZero() || int(h.Index) >= len(e.slots) {
		return nil
	}
	s := &e.slots[h.Index]
	if !s.alive || s.generation != h.Generation {
		return nil
	}
	return s
}

// Snapshot returns every live sprite in slot order
func (e *Engine) Snapshot() []Sprite {
	out := make([]Sprite, 0, e.Len())
	for _, s := range e.slots {
		if s.alive {
			out = append(out, s.sprite)
		}
	}
	return out
}

// SpriteAt returns the first sprite whose box contains the point p
func (e *Engine) SpriteAt(p Position) (Sprite, bool) {
	s := e.slotAt(p)
	if s == nil {
		return Sprite{}, false
	}
	return s.sprite, true
}

func (e *Engine) slotAt(p Position) *slot {
	x, y := p.X*e.cfg.Stride, p.Y*e.cfg.Stride
	for i := range e.slots {
		s := &e.slots[i]
		if s.alive && e.BoxAt(s.sprite.Pos).Contains(x, y) {
			return s
		}
	}
	return nil
}

// AddSprite places a new sprite. A nil pos spawns near the field centre.
// Incumbents overlapping the newcomer are displaced.
func (e *Engine) AddSprite(category garden.SpriteCategory, level int, pos *Position) (Sprite, error) {
	if _, ok := garden.ParseSpriteCategory(string(category)); !ok {
		return Sprite{}, errors.InvalidArgumentf("unknown sprite category %q", category)
	}
	if !category.ValidLevel(level) {
		return Sprite{}, errors.InvalidArgumentf("level %d out of range for %s sprites (1-%d)",
			level, category, category.MaxLevel())
	}

	var at Position
	if pos == nil {
		spawn, err := e.spawnPosition()
		if err != nil {
			return Sprite{}, err
		}
		at = spawn
	} else {
		if !e.InField(*pos) {
			return Sprite{}, errors.InvalidArgumentf("position %s outside the garden", *pos)
		}
		at = *pos
	}

	s := e.alloc()
	s.sprite.ID = e.cfg.IDGenerator.Generate()
	s.sprite.Category = category
	s.sprite.Level = level
	s.sprite.Pos = at
	added := s.sprite

	if _, err := e.displaceAround(at, added.Handle); err != nil {
		return Sprite{}, err
	}
	return added, nil
}

// MoveSprite drags the sprite under from to the point to. If a merge-eligible
// sprite sits at the destination it levels up and consumes the mover. Otherwise
// every occupant is displaced and the mover lands exactly on to. A missing
// mover or an out-of-field destination changes nothing.
//
// Every occupant under to is checked for a merge, not only the first hit.
// Sprites never overlap, so at most one occupant is eligible and the result
// matches a first-hit test.
func (e *Engine) MoveSprite(from, to Position) (MoveResult, error) {
	moverSlot := e.slotAt(from)
	if moverSlot == nil || !e.InField(to) {
		return MoveResult{Outcome: MoveNone}, nil
	}
	mover := moverSlot.sprite

	occupants := e.overlapping(to, mover.Handle)
	for _, h := range occupants {
		target := e.lookup(h)
		if !mover.CanMergeWith(target.sprite) {
			continue
		}
		target.sprite.Level++
		e.release(mover.Handle)
		return MoveResult{
			Outcome:  MoveMerged,
			Sprite:   target.sprite,
			Consumed: mover.Handle,
		}, nil
	}

	displaced, err := e.displaceAround(to, mover.Handle)
	if err != nil {
		return MoveResult{}, err
	}

	moverSlot = e.lookup(mover.Handle)
	moverSlot.sprite.Pos = to

	res := MoveResult{Outcome: MoveMoved, Sprite: moverSlot.sprite, Displaced: displaced}
	if len(displaced) > 0 {
		res.Outcome = MoveDisplaced
	}
	return res, nil
}

// RemoveSpriteAt deletes the sprite under p
func (e *Engine) RemoveSpriteAt(p Position) (Sprite, bool) {
	s := e.slotAt(p)
	if s == nil {
		return Sprite{}, false
	}
	removed := s.sprite
	e.release(removed.Handle)
	return removed, true
}

// Remove deletes the sprite behind h
func (e *Engine) Remove(h Handle) bool {
	if e.lookup(h) == nil {
		return false
	}
	e.release(h)
	return true
}

func (e *Engine) alloc() *slot {
	var idx uint32
	if n := len(e.free); n > 0 {
		idx = e.free[n-1]
		e.free = e.free[:n-1]
	} else {
		e.slots = append(e.slots, slot{})
		idx = uint32(len(e.slots) - 1)
	}

	s := &e.slots[idx]
	s.generation++
	s.alive = true
	s.sprite = Sprite{Handle: Handle{Index: idx, Generation: s.generation}}
	return s
}

func (e *Engine) release(h Handle) {
	s := &e.slots[h.Index]
	s.alive = false
	s.sprite = Sprite{}
	e.free = append(e.free, h.Index)
}

// overlapping returns the handles of live sprites whose boxes collide with a
// box anchored at p, skipping exclude
func (e *Engine) overlapping(p Position, exclude Handle) []Handle {
	var out []Handle
	for _, s := range e.slots {
		if !s.alive || s.sprite.Handle == exclude {
			continue
		}
		if e.Overlaps(s.sprite.Pos, p) {
			out = append(out, s.sprite.Handle)
		}
	}
	return out
}

// displaceAround relocates every sprite overlapping a box at p, other than keep
func (e *Engine) displaceAround(p Position, keep Handle) ([]Sprite, error) {
	var displaced []Sprite
	for _, h := range e.overlapping(p, keep) {
		dest, err := e.awayPosition(p, h)
		if err != nil {
			return displaced, err
		}
		s := e.lookup(h)
		s.sprite.Pos = dest
		displaced = append(displaced, s.sprite)
	}
	return displaced, nil
}
