// Package backpack implements the off-grid item multiset
package backpack

import (
	"sort"

	"github.com/KirkDiggler/garden-api/internal/entities/garden"
)

// Stack is one backpack entry
type Stack struct {
	Key   garden.ItemKey
	Count int
}

// Backpack maps item keys to positive counts. Keys whose count reaches zero
// are deleted.
type Backpack struct {
	items map[garden.ItemKey]int
}

// New returns an empty backpack
func New() *Backpack {
	return &Backpack{items: make(map[garden.ItemKey]int)}
}

// AddItem adds count units of key. Non-positive counts and invalid keys are ignored.
func (b *Backpack) AddItem(key garden.ItemKey, count int) {
	if count <= 0 || !key.Valid() {
		return
	}
	b.items[key] += count
}

// RemoveItem takes count units of key. It fails without mutating when the
// stack holds fewer than count.
func (b *Backpack) RemoveItem(key garden.ItemKey, count int) bool {
	if count <= 0 {
		return false
	}
	have := b.items[key]
	if have < count {
		return false
	}
	if have == count {
		delete(b.items, key)
	} else {
		b.items[key] = have - count
	}
	return true
}

// Count returns the units held of key
func (b *Backpack) Count(key garden.ItemKey) int {
	return b.items[key]
}

// Len returns the number of distinct stacks
func (b *Backpack) Len() int {
	return len(b.items)
}

// CombineAdjacentPairs converts every two units of a level into one unit of
// the next level, lowest level first, so the result cascades upward in one call.
// Seed pairs become level 0 trees before trees are processed. Items at the
// top level stay as they are. Reports whether anything combined.
func (b *Backpack) CombineAdjacentPairs() bool {
	combined := b.promote(garden.SeedKey, garden.TreeKey(0))

	for level := garden.MinLevel; level < garden.MaxTreeLevel; level++ {
		if b.promote(garden.TreeKey(level), garden.TreeKey(level+1)) {
			combined = true
		}
	}
	for level := garden.MinLevel; level < garden.MaxFruitLevel; level++ {
		if b.promote(garden.FruitKey(level), garden.FruitKey(level+1)) {
			combined = true
		}
	}
	return combined
}

func (b *Backpack) promote(from, to garden.ItemKey) bool {
	pairs := b.items[from] / 2
	if pairs == 0 {
		return false
	}
	b.RemoveItem(from, pairs*2)
	b.AddItem(to, pairs)
	return true
}

// Snapshot returns every stack ordered seed, trees, fruit, then by level
func (b *Backpack) Snapshot() []Stack {
	stacks := make([]Stack, 0, len(b.items))
	for key, count := range b.items {
		stacks = append(stacks, Stack{Key: key, Count: count})
	}
	sort.Slice(stacks, func(i, j int) bool {
		ci, cj := categoryOrder(stacks[i].Key.Category), categoryOrder(stacks[j].Key.Category)
		if ci != cj {
			return ci < cj
		}
		return stacks[i].Key.Level < stacks[j].Key.Level
	})
	return stacks
}

func categoryOrder(c garden.Category) int {
	switch c {
	case garden.CategorySeed:
		return 0
	case garden.CategoryTree:
		return 1
	default:
		return 2
	}
}
