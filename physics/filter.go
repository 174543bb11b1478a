package physics

import (
	"fmt"
	"sort"
	"strings"
)

// Collision categories. Shapes carry exactly one; probes mask on them.
const (
	CategoryCharacter uint = 1 << iota
	CategorySolid
	CategoryPlatform
)

var categoryNames = map[string]uint{
	"character": CategoryCharacter,
	"solid":     CategorySolid,
	"platform":  CategoryPlatform,
}

// ParseMask turns category names into a bit mask. An empty list means
// everything except characters.
func ParseMask(names []string) (uint, error) {
	if len(names) == 0 {
		return CategorySolid | CategoryPlatform, nil
	}
	var mask uint
	for _, name := range names {
		bit, ok := categoryNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("physics: unknown collision category %q", name)
		}
		mask |= bit
	}
	return mask, nil
}

// MaskTags returns the category names set in mask, sorted.
func MaskTags(mask uint) []string {
	var tags []string
	for name, bit := range categoryNames {
		if mask&bit != 0 {
			tags = append(tags, name)
		}
	}
	sort.Strings(tags)
	return tags
}

// CategoryTag returns the name of a single category bit.
func CategoryTag(category uint) string {
	for name, bit := range categoryNames {
		if bit == category {
			return name
		}
	}
	return ""
}
