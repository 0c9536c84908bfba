package garden

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is the kind of a discrete garden item
type Category string

// Item categories
const (
	CategorySeed  Category = "seed"
	CategoryTree  Category = "tree"
	CategoryFruit Category = "fruit"
)

// ParseCategory converts a string to a Category
func ParseCategory(s string) (Category, bool) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategorySeed, CategoryTree, CategoryFruit:
		return c, true
	}
	return "", false
}

// MaxLevel returns the top level of the category. Seeds have no levels.
func (c Category) MaxLevel() int {
	switch c {
	case CategoryTree:
		return MaxTreeLevel
	case CategoryFruit:
		return MaxFruitLevel
	}
	return 0
}

// ItemKey identifies a backpack stack. Level is ignored for seeds.
type ItemKey struct {
	Category Category
	Level    int
}

// SeedKey is the key of the seed stack
var SeedKey = ItemKey{Category: CategorySeed}

// TreeKey returns the key for trees of level
func TreeKey(level int) ItemKey {
	return ItemKey{Category: CategoryTree, Level: level}
}

// FruitKey returns the key for fruits of level
func FruitKey(level int) ItemKey {
	return ItemKey{Category: CategoryFruit, Level: level}
}

// NewItemKey builds a key, dropping the level for seeds
func NewItemKey(category Category, level int) ItemKey {
	if category == CategorySeed {
		return SeedKey
	}
	return ItemKey{Category: category, Level: level}
}

// Valid reports whether the key addresses a real item
func (k ItemKey) Valid() bool {
	switch k.Category {
	case CategorySeed:
		return k.Level == 0
	case CategoryTree:
		return ValidTreeLevel(k.Level)
	case CategoryFruit:
		return ValidFruitLevel(k.Level)
	}
	return false
}

// String renders "seed" or "{category}-{level}"
func (k ItemKey) String() string {
	if k.Category == CategorySeed {
		return string(CategorySeed)
	}
	return fmt.Sprintf("%s-%d", k.Category, k.Level)
}

// ParseItemKey parses the output of ItemKey.String
func ParseItemKey(s string) (ItemKey, error) {
	if s == string(CategorySeed) {
		return SeedKey, nil
	}

	idx := strings.LastIndex(s, "-")
	if idx <= 0 {
		return ItemKey{}, fmt.Errorf("malformed item key %q", s)
	}
	category, ok := ParseCategory(s[:idx])
	if !ok || category == CategorySeed {
		return ItemKey{}, fmt.Errorf("unknown item category in %q", s)
	}
	level, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return ItemKey{}, fmt.Errorf("malformed level in %q: %w", s, err)
	}

	key := ItemKey{Category: category, Level: level}
	if !key.Valid() {
		return ItemKey{}, fmt.Errorf("level out of range in %q", s)
	}
	return key, nil
}

// DisplayName returns the species name of the item
func (k ItemKey) DisplayName() string {
	switch k.Category {
	case CategoryTree:
		if sp, ok := TreeSpecies(k.Level); ok {
			return sp.Name
		}
	case CategoryFruit:
		if sp, ok := FruitSpecies(k.Level); ok {
			return sp.Name
		}
	case CategorySeed:
		return "Seed"
	}
	return k.String()
}
