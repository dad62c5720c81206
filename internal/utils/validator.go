package utils

import (
	"fmt"
	"math"
	"strings"

	"ecotrack/domain"
	"ecotrack/entities"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
)

var Validate *validator.Validate

var customValidations = map[string]validator.Func{
	"category": func(fl validator.FieldLevel) bool {
		_, ok := entities.ParseCategory(fl.Field().String())
		return ok
	},
}

func InitValidator() {
	v := validator.New()
	if err := registerValidations(v, customValidations); err != nil {
		log.Fatalf("error initializing validator: %v", err)
	}
	Validate = v
}

func registerValidations(v *validator.Validate, validations map[string]validator.Func) error {
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validation: %w", tag, err)
		}
	}
	return nil
}

// ValidateFoodFields checks the fields inventory items and waste entries
// share and returns the normalized category.
func ValidateFoodFields(foodItem string, quantity float64, unit string, category string) (entities.Category, error) {
	if strings.TrimSpace(foodItem) == "" {
		return "", domain.ErrMissingFoodItem
	}
	if !(quantity > 0) || math.IsInf(quantity, 1) {
		return "", domain.ErrInvalidQuantity
	}
	if strings.TrimSpace(unit) == "" {
		return "", domain.ErrMissingUnit
	}
	c, ok := entities.ParseCategory(category)
	if !ok {
		return "", domain.ErrInvalidCategory
	}
	return c, nil
}
