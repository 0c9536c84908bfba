// Package garden holds the static item tables of the garden: tree species,
// fruit species, item keys and sprite categories.
package garden

import "fmt"

const (
	// MinLevel is the lowest tree and fruit level
	MinLevel = 0
	// MaxTreeLevel is the highest tree level; trees at this level no longer merge
	MaxTreeLevel = 15
	// MaxFruitLevel is the highest fruit level
	MaxFruitLevel = 15
)

// Species describes one row of a species table
type Species struct {
	Level int
	Name  string
	// Slug is a stable ascii identifier used for icon keys and lookups
	Slug    string
	IconKey string
	// SaleValue is the price of one item in secondary currency; zero for trees
	SaleValue int64
}

type speciesRow struct {
	name  string
	slug  string
	value int64
}

var treeRows = [MaxTreeLevel + 1]speciesRow{
	{name: "Fruit Tree", slug: "fruit-tree"},
	{name: "Strawberry Tree", slug: "strawberry-tree"},
	{name: "Banana Tree", slug: "banana-tree"},
	{name: "Pineapple Tree", slug: "pineapple-tree"},
	{name: "Grape Vine", slug: "grape-vine"},
	{name: "Kiwi Vine", slug: "kiwi-vine"},
	{name: "Pomegranate Tree", slug: "pomegranate-tree"},
	{name: "Apple Tree", slug: "apple-tree"},
	{name: "Pear Tree", slug: "pear-tree"},
	{name: "Hawthorn Tree", slug: "hawthorn-tree"},
	{name: "Peach Tree", slug: "peach-tree"},
	{name: "Plum Tree", slug: "plum-tree"},
	{name: "Cherry Tree", slug: "cherry-tree"},
	{name: "Walnut Tree", slug: "walnut-tree"},
	{name: "Chestnut Tree", slug: "chestnut-tree"},
	{name: "Ginkgo Tree", slug: "ginkgo-tree"},
}

// Each fruit level is worth roughly 2.2x the previous one.
var fruitRows = [MaxFruitLevel + 1]speciesRow{
	{name: "Fruit", slug: "fruit", value: 100},
	{name: "Strawberry", slug: "strawberry", value: 220},
	{name: "Banana", slug: "banana", value: 484},
	{name: "Pineapple", slug: "pineapple", value: 1064},
	{name: "Grape", slug: "grape", value: 2342},
	{name: "Kiwi", slug: "kiwi", value: 5153},
	{name: "Pomegranate", slug: "pomegranate", value: 11338},
	{name: "Apple", slug: "apple", value: 24943},
	{name: "Pear", slug: "pear", value: 54875},
	{name: "Hawthorn", slug: "hawthorn", value: 120726},
	{name: "Peach", slug: "peach", value: 265597},
	{name: "Plum", slug: "plum", value: 584314},
	{name: "Cherry", slug: "cherry", value: 1285491},
	{name: "Walnut", slug: "walnut", value: 2828080},
	{name: "Chestnut", slug: "chestnut", value: 6221776},
	{name: "Ginkgo", slug: "ginkgo", value: 13687907},
}

// ValidTreeLevel reports whether level indexes the tree table
func ValidTreeLevel(level int) bool {
	return level >= MinLevel && level <= MaxTreeLevel
}

// ValidFruitLevel reports whether level indexes the fruit table
func ValidFruitLevel(level int) bool {
	return level >= MinLevel && level <= MaxFruitLevel
}

// TreeSpecies returns the tree species for level
func TreeSpecies(level int) (Species, bool) {
	if !ValidTreeLevel(level) {
		return Species{}, false
	}
	row := treeRows[level]
	return Species{
		Level:   level,
		Name:    row.name,
		Slug:    row.slug,
		IconKey: fmt.Sprintf("trees/tree-%d", level),
	}, true
}

// FruitSpecies returns the fruit species for level
func FruitSpecies(level int) (Species, bool) {
	if !ValidFruitLevel(level) {
		return Species{}, false
	}
	row := fruitRows[level]
	return Species{
		Level:     level,
		Name:      row.name,
		Slug:      row.slug,
		IconKey:   "fruits/" + row.slug,
		SaleValue: row.value,
	}, true
}

// FruitValue returns the sale value of one fruit, zero for unknown levels
func FruitValue(level int) int64 {
	if !ValidFruitLevel(level) {
		return 0
	}
	return fruitRows[level].value
}

// TreeLevelByName returns the level of the tree species with the given
// display name or slug, or -1 when there is none.
func TreeLevelByName(name string) (int, bool) {
	return levelByName(treeRows[:], name)
}

// FruitLevelByName is TreeLevelByName for fruits
func FruitLevelByName(name string) (int, bool) {
	return levelByName(fruitRows[:], name)
}

func levelByName(rows []speciesRow, name string) (int, bool) {
	for level, row := range rows {
		if row.name == name || row.slug == name {
			return level, true
		}
	}
	return -1, false
}
