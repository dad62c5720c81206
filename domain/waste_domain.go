package domain

import (
	"fmt"
	"time"
)

const DefaultWasteReason = "Not specified"

var (
	MessageSuccessLogWaste     = "waste logged successfully"
	MessageSuccessGetWasteData = "waste entries retrieved successfully"

	MessageFailedLogWaste     = "failed to log waste"
	MessageFailedGetWasteData = "failed to retrieve waste entries"

	ErrInvalidCO2Impact = fmt.Errorf("%w: co2 impact must not be negative", ErrValidation)
)

type (
	LogWasteRequest struct {
		FoodItem  string   `json:"food_item" validate:"required"`
		Quantity  float64  `json:"quantity" validate:"required,gt=0"`
		Unit      string   `json:"unit" validate:"required"`
		Category  string   `json:"category" validate:"required,category"`
		Reason    string   `json:"reason" validate:"omitempty"`
		CO2Impact *float64 `json:"co2_impact,omitempty" validate:"omitempty,gte=0"`
	}

	WasteEntryResponse struct {
		FoodItem  string    `json:"food_item"`
		Quantity  float64   `json:"quantity"`
		Unit      string    `json:"unit"`
		Category  string    `json:"category"`
		Reason    string    `json:"reason"`
		CO2Impact float64   `json:"co2_impact"`
		Timestamp time.Time `json:"timestamp"`
	}
)
