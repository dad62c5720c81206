package utils

import (
	"testing"

	"ecotrack/entities"

	"github.com/stretchr/testify/assert"
)

func TestToGrams(t *testing.T) {
	assert.Equal(t, 2000.0, ToGrams(2, entities.UnitKilograms))
	assert.Equal(t, 1500.0, ToGrams(1.5, "KG"))
	assert.Equal(t, 250.0, ToGrams(250, entities.UnitGrams))
	assert.Equal(t, 3.0, ToGrams(3, entities.UnitCount))
	assert.Equal(t, 4.0, ToGrams(4, "lbs"))
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "0 g", FormatWeight(0))
	assert.Equal(t, "450 g", FormatWeight(450.4))
	assert.Equal(t, "999 g", FormatWeight(999))
	assert.Equal(t, "1.0 kg", FormatWeight(1000))
	assert.Equal(t, "2.5 kg", FormatWeight(2500))
}

func TestFormatCO2(t *testing.T) {
	assert.Equal(t, "0.0 kg CO₂", FormatCO2(0))
	assert.Equal(t, "3.8 kg CO₂", FormatCO2(3.8))
	assert.Equal(t, "10.6 kg CO₂", FormatCO2(10.6))
}
