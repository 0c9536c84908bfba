package sprites

import (
	"math"

	"github.com/KirkDiggler/garden-api/internal/errors"
)

// fraction draws a uniform value in [0, 1]
func (e *Engine) fraction() (float64, error) {
	r, err := e.cfg.Roller.Roll(rollResolution)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll sprite position")
	}
	return float64(r-1) / float64(rollResolution-1), nil
}

// spawnPosition picks a random point near the centre of the field
func (e *Engine) spawnPosition() (Position, error) {
	cx, cy := e.cfg.Width/2, e.cfg.Height/2
	rangeX := math.Min(6, e.cfg.Width/2)
	rangeY := math.Min(3, e.cfg.Height/2)

	fx, err := e.fraction()
	if err != nil {
		return Position{}, err
	}
	fy, err := e.fraction()
	if err != nil {
		return Position{}, err
	}

	return e.clamp(Position{
		X: cx - rangeX/2 + fx*rangeX,
		Y: cy - rangeY/2 + fy*rangeY,
	}), nil
}

// awayPosition finds a new home for the sprite behind moving. The spot is at
// least MinDisplacement from avoid and clear of every other sprite. Random
// samples come first, then a row-major scan, then a scan that only keeps clear
// of the drop box. The last resort steps MinDisplacement along each axis.
func (e *Engine) awayPosition(avoid Position, moving Handle) (Position, error) {
	minDist := e.cfg.MinDisplacement

	for i := 0; i < e.cfg.PlacementAttempts; i++ {
		fx, err := e.fraction()
		if err != nil {
			return Position{}, err
		}
		fy, err := e.fraction()
		if err != nil {
			return Position{}, err
		}

		p := Position{X: fx * e.MaxX(), Y: fy * e.MaxY()}
		if p.Distance(avoid) >= minDist && e.clear(p, avoid, moving) {
			return p, nil
		}
	}

	if p, ok := e.scan(func(p Position) bool {
		return p.Distance(avoid) >= minDist && e.clear(p, avoid, moving)
	}); ok {
		return p, nil
	}

	if p, ok := e.scan(func(p Position) bool {
		return e.clear(p, avoid, moving)
	}); ok {
		return p, nil
	}

	return e.fallbackPosition(avoid), nil
}

// clear reports whether a box at p touches neither the drop box nor any sprite
// other than moving
func (e *Engine) clear(p, avoid Position, moving Handle) bool {
	if e.Overlaps(p, avoid) {
		return false
	}
	return len(e.overlapping(p, moving)) == 0
}

func (e *Engine) scan(accept func(Position) bool) (Position, bool) {
	for y := 0.0; y <= e.MaxY(); y += scanStep {
		for x := 0.0; x <= e.MaxX(); x += scanStep {
			p := Position{X: x, Y: y}
			if accept(p) {
				return p, true
			}
		}
	}
	return Position{}, false
}

func (e *Engine) fallbackPosition(avoid Position) Position {
	d := e.cfg.MinDisplacement
	x := avoid.X + d
	if x > e.MaxX() {
		x = avoid.X - d
	}
	y := avoid.Y + d
	if y > e.MaxY() {
		y = avoid.Y - d
	}
	return e.clamp(Position{X: x, Y: y})
}

func (e *Engine) clamp(p Position) Position {
	return Position{
		X: math.Min(math.Max(p.X, 0), e.MaxX()),
		Y: math.Min(math.Max(p.Y, 0), e.MaxY()),
	}
}
