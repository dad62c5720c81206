package utils

import (
	"fmt"
	"strings"

	"ecotrack/entities"

	"github.com/shopspring/decimal"
)

var gramsPerKilogram = decimal.NewFromInt(1000)

// ToGrams is the single place quantities are normalized. Only "kg" is
// scaled; any other unit is counted as grams.
func ToGrams(quantity float64, unit entities.Unit) float64 {
	q := decimal.NewFromFloat(quantity)
	if strings.EqualFold(strings.TrimSpace(string(unit)), string(entities.UnitKilograms)) {
		q = q.Mul(gramsPerKilogram)
	}
	return q.InexactFloat64()
}

// FormatWeight renders grams the way the dashboard card shows them.
func FormatWeight(grams float64) string {
	if grams >= 1000 {
		return decimal.NewFromFloat(grams).Div(gramsPerKilogram).StringFixed(1) + " kg"
	}
	return decimal.NewFromFloat(grams).Round(0).String() + " g"
}

func FormatCO2(kg float64) string {
	return fmt.Sprintf("%s kg CO₂", decimal.NewFromFloat(kg).StringFixed(1))
}
