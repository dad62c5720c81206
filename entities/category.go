package entities

import (
	"encoding/json"
	"strings"
)

// Category groups food for expiry and emission lookups.
type Category string

const (
	CategoryFruitsVegetables Category = "fruits_vegetables"
	CategoryDairy            Category = "dairy"
	CategoryGrainsBread      Category = "grains_bread"
	CategoryMeatFish         Category = "meat_fish"
	CategoryOther            Category = "other"
)

var Categories = []Category{
	CategoryFruitsVegetables,
	CategoryDairy,
	CategoryGrainsBread,
	CategoryMeatFish,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts the canonical keys as well as display labels such as
// "Fruits & Vegetables" or "meat & fish". The normalized key is returned even
// when it is not one of the known categories.
func ParseCategory(s string) (Category, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " & ", "_")
	key = strings.ReplaceAll(key, "&", "_")
	key = strings.Join(strings.Fields(key), "_")

	c := Category(key)
	return c, c.Valid()
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c, _ = ParseCategory(raw)
	return nil
}
