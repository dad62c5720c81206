package co2

import (
	"ecotrack/entities"

	"github.com/shopspring/decimal"
)

type (
	CO2Estimator interface {
		// Estimate converts grams of wasted food into kg CO2-equivalent.
		Estimate(category entities.Category, weightGrams float64) float64
		Factor(category entities.Category) float64
	}

	co2Estimator struct {
		factors map[entities.Category]decimal.Decimal
	}
)

// kg CO2e emitted per kg of food waste
var emissionFactors = map[entities.Category]decimal.Decimal{
	entities.CategoryFruitsVegetables: decimal.RequireFromString("0.5"),
	entities.CategoryDairy:            decimal.RequireFromString("1.9"),
	entities.CategoryGrainsBread:      decimal.RequireFromString("1.4"),
	entities.CategoryMeatFish:         decimal.RequireFromString("5.3"),
	entities.CategoryOther:            decimal.RequireFromString("2.0"),
}

var gramsPerKilogram = decimal.NewFromInt(1000)

func NewCO2Estimator() CO2Estimator {
	return &co2Estimator{factors: emissionFactors}
}

func (e *co2Estimator) Estimate(category entities.Category, weightGrams float64) float64 {
	kg := decimal.NewFromFloat(weightGrams).Div(gramsPerKilogram)
	return kg.Mul(e.factor(category)).InexactFloat64()
}

func (e *co2Estimator) Factor(category entities.Category) float64 {
	return e.factor(category).InexactFloat64()
}

func (e *co2Estimator) factor(category entities.Category) decimal.Decimal {
	normalized, _ := entities.ParseCategory(string(category))
	if f, ok := e.factors[normalized]; ok {
		return f
	}
	return e.factors[entities.CategoryOther]
}
