package grid

import "github.com/KirkDiggler/garden-api/internal/entities/garden"

// HarvestResult counts what HarvestAll moved
type HarvestResult struct {
	Seeds int
	// Fruits maps fruit level to count
	Fruits map[int]int
}

// Total returns every item moved
func (r HarvestResult) Total() int {
	n := r.Seeds
	for _, c := range r.Fruits {
		n += c
	}
	return n
}

// HarvestAll moves every fruit and seed into c and clears their cells.
// Trees stay where they are. c receives seeds first, then fruit by ascending
// level.
func (g *Grid) HarvestAll(c Collector) HarvestResult {
	res := HarvestResult{Fruits: make(map[int]int)}
	for i, cell := range g.cells {
		switch cell.kind {
		case KindSeed:
			res.Seeds++
		case KindFruit:
			res.Fruits[cell.level]++
		case KindEmpty, KindTree:
			continue
		}
		g.cells[i] = EmptyCell()
	}

	if res.Seeds > 0 {
		c.AddItem(garden.SeedKey, res.Seeds)
	}
	for level := garden.MinLevel; level <= garden.MaxFruitLevel; level++ {
		if n := res.Fruits[level]; n > 0 {
			c.AddItem(garden.FruitKey(level), n)
		}
	}
	return res
}

// SaleResult describes a completed sale
type SaleResult struct {
	Level     int
	Count     int
	UnitValue int64
	Amount    int64
	Cleared   []Pos
}

// CountFruit returns how many fruits of level sit on the grid
func (g *Grid) CountFruit(level int) int {
	n := 0
	for _, c := range g.cells {
		if c.kind == KindFruit && c.level == level {
			n++
		}
	}
	return n
}

// Sell clears every fruit of level and pays count*value through credit.
// The cells are cleared only once credit succeeds. Nothing is credited when
// there is nothing to sell.
func (g *Grid) Sell(level int, credit func(amount int64) error) (SaleResult, error) {
	res := SaleResult{Level: level, UnitValue: garden.FruitValue(level)}
	if !garden.ValidFruitLevel(level) {
		return res, nil
	}

	var matched []int
	for i, c := range g.cells {
		if c.kind == KindFruit && c.level == level {
			matched = append(matched, i)
		}
	}
	if len(matched) == 0 {
		return res, nil
	}

	amount := int64(len(matched)) * res.UnitValue
	if err := credit(amount); err != nil {
		return res, err
	}

	for _, i := range matched {
		g.cells[i] = EmptyCell()
		res.Cleared = append(res.Cleared, Pos{Row: i / g.width, Col: i % g.width})
	}
	res.Count = len(matched)
	res.Amount = amount
	return res, nil
}
