package garden

import "strings"

// SpriteCategory is the family a companion sprite belongs to
type SpriteCategory string

// Sprite categories
const (
	SpriteClassic SpriteCategory = "classic"
	SpriteShanhai SpriteCategory = "shanhai"
	SpriteShiny   SpriteCategory = "shiny"
	SpriteShenwu  SpriteCategory = "shenwu"
	SpriteLimited SpriteCategory = "limited"
)

const (
	// MinSpriteLevel is the level every sprite starts from
	MinSpriteLevel = 1
	// MaxSpriteLevel is the cap for every category except limited
	MaxSpriteLevel = 16
)

// SpriteCategories lists every category in display order
var SpriteCategories = []SpriteCategory{
	SpriteClassic,
	SpriteShanhai,
	SpriteShiny,
	SpriteShenwu,
	SpriteLimited,
}

// ParseSpriteCategory converts a string to a SpriteCategory
func ParseSpriteCategory(s string) (SpriteCategory, bool) {
	c := SpriteCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SpriteCategories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// MaxLevel is the highest level of the category. Limited sprites never merge.
func (c SpriteCategory) MaxLevel() int {
	if c == SpriteLimited {
		return 1
	}
	return MaxSpriteLevel
}

// ValidLevel reports whether level is legal for the category
func (c SpriteCategory) ValidLevel(level int) bool {
	return level >= MinSpriteLevel && level <= c.MaxLevel()
}

// SpriteCategoryNames returns the category names as strings
func SpriteCategoryNames() []string {
	names := make([]string, len(SpriteCategories))
	for i, c := range SpriteCategories {
		names[i] = string(c)
	}
	return names
}
