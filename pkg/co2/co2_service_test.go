package co2

import (
	"testing"

	"ecotrack/entities"

	"github.com/stretchr/testify/assert"
)

func TestCO2Estimator_Estimate(t *testing.T) {
	estimator := NewCO2Estimator()

	tests := []struct {
		name     string
		category entities.Category
		grams    float64
		want     float64
	}{
		{"dairy two kilos", entities.CategoryDairy, 2000, 3.8},
		{"meat one kilo", entities.CategoryMeatFish, 1000, 5.3},
		{"meat two kilos", entities.CategoryMeatFish, 2000, 10.6},
		{"fruit grams", entities.CategoryFruitsVegetables, 300, 0.15},
		{"grains", entities.CategoryGrainsBread, 250, 0.35},
		{"other", entities.CategoryOther, 500, 1},
		{"unknown falls back to other", entities.Category("snacks"), 1000, 2.0},
		{"zero weight", entities.CategoryDairy, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimator.Estimate(tt.category, tt.grams))
		})
	}
}

func TestCO2Estimator_Factor(t *testing.T) {
	estimator := NewCO2Estimator()

	assert.Equal(t, 0.5, estimator.Factor(entities.CategoryFruitsVegetables))
	assert.Equal(t, 5.3, estimator.Factor(entities.Category("Meat & Fish")))
	assert.Equal(t, 2.0, estimator.Factor(entities.Category("")))
}
