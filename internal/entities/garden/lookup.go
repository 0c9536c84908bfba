package garden

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestTreeLevel resolves a possibly misspelled tree species name.
// Matching is case-insensitive: exact, then prefix, then nearest edit distance.
func SuggestTreeLevel(name string) (int, bool) {
	return suggest(treeRows[:], name)
}

// SuggestFruitLevel resolves a possibly misspelled fruit name
func SuggestFruitLevel(name string) (int, bool) {
	return suggest(fruitRows[:], name)
}

func suggest(rows []speciesRow, name string) (int, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return -1, false
	}

	for level, row := range rows {
		if query == strings.ToLower(row.name) || query == row.slug {
			return level, true
		}
	}

	if len(query) >= 3 {
		for level, row := range rows {
			if strings.HasPrefix(strings.ToLower(row.name), query) {
				return level, true
			}
		}
	}

	best, bestDist := -1, 0
	for level, row := range rows {
		candidate := strings.ToLower(row.name)
		dist := levenshtein.ComputeDistance(query, candidate)
		if dist > distanceLimit(len(candidate)) {
			continue
		}
		if best == -1 || dist < bestDist {
			best, bestDist = level, dist
		}
	}
	return best, best >= 0
}

func distanceLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
