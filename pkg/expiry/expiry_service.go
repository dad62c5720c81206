package expiry

import (
	"strings"

	"ecotrack/entities"
)

// GenericShelfLifeDays applies to categories with no guide of their own.
const GenericShelfLifeDays = 14

type (
	ExpiryEstimator interface {
		// Estimate returns today plus the shelf life resolved for the food.
		Estimate(foodItem string, category entities.Category, today entities.Date) entities.Date
		ShelfLifeDays(foodItem string, category entities.Category) int
	}

	override struct {
		key  string
		days int
	}

	guide struct {
		defaultDays int
		overrides   []override // first substring match wins, so order matters
	}

	expiryEstimator struct {
		guides   map[entities.Category]guide
		fallback guide
	}
)

var defaultGuides = map[entities.Category]guide{
	entities.CategoryFruitsVegetables: {
		defaultDays: 7,
		overrides: []override{
			{"apple", 14},
			{"banana", 5},
			{"berries", 3},
			{"lettuce", 5},
			{"tomato", 7},
			{"cucumber", 7},
			{"onion", 30},
			{"potato", 21},
			{"avocado", 5},
			{"carrot", 21},
			{"broccoli", 7},
		},
	},
	entities.CategoryDairy: {
		defaultDays: 7,
		overrides: []override{
			{"milk", 7},
			{"yogurt", 14},
			{"cheese", 21},
			{"butter", 30},
			{"cream", 7},
		},
	},
	entities.CategoryMeatFish: {
		defaultDays: 3,
		overrides: []override{
			{"chicken", 2},
			{"beef", 3},
			{"pork", 3},
			{"fish", 2},
			{"seafood", 1},
		},
	},
	entities.CategoryGrainsBread: {
		defaultDays: 7,
		overrides: []override{
			{"bread", 7},
			{"rice", 365},
			{"pasta", 365},
			{"cereal", 180},
			{"flour", 180},
		},
	},
	entities.CategoryOther: {
		defaultDays: GenericShelfLifeDays,
	},
}

func NewExpiryEstimator() ExpiryEstimator {
	return &expiryEstimator{
		guides:   defaultGuides,
		fallback: guide{defaultDays: GenericShelfLifeDays},
	}
}

func (e *expiryEstimator) Estimate(foodItem string, category entities.Category, today entities.Date) entities.Date {
	return today.AddDays(e.ShelfLifeDays(foodItem, category))
}

func (e *expiryEstimator) ShelfLifeDays(foodItem string, category entities.Category) int {
	normalized, _ := entities.ParseCategory(string(category))
	g, ok := e.guides[normalized]
	if !ok {
		g = e.fallback
	}

	name := strings.ToLower(foodItem)
	for _, o := range g.overrides {
		if strings.Contains(name, o.key) {
			return o.days
		}
	}
	return g.defaultDays
}
