package domain

import (
	"fmt"
)

const (
	ReasonExpiredWasted      = "Expired/Wasted"
	DefaultWarningWindowDays = 3
	MaxExpiryWarnings        = 3

	ExpiryStatusExpired = "Expired"
	ExpiryStatusToday   = "Expires today"
	ExpiryStatusUrgent  = "Urgent"
	ExpiryStatusSoon    = "Soon"
	ExpiryStatusFresh   = "Fresh"
)

var (
	MessageSuccessAddInventoryItem  = "item added to inventory"
	MessageSuccessGetInventoryItems = "inventory items retrieved successfully"
	MessageSuccessGetInventoryItem  = "inventory item retrieved successfully"
	MessageSuccessGetExpiryWarnings = "expiry warnings retrieved successfully"
	MessageSuccessMarkConsumed      = "item marked as consumed"
	MessageSuccessMarkWasted        = "item marked as wasted and logged to waste tracker"

	MessageFailedAddInventoryItem  = "failed to add inventory item"
	MessageFailedGetInventoryItems = "failed to retrieve inventory items"
	MessageFailedGetInventoryItem  = "failed to retrieve inventory item"
	MessageFailedGetExpiryWarnings = "failed to retrieve expiry warnings"
	MessageFailedMarkConsumed      = "failed to mark item as consumed"
	MessageFailedMarkWasted        = "failed to mark item as wasted"

	ErrInventoryItemNotFound = fmt.Errorf("inventory item %w", ErrNotFound)
	ErrInvalidQuantity       = fmt.Errorf("%w: quantity must be a positive number", ErrValidation)
	ErrInvalidCategory       = fmt.Errorf("%w: unknown category", ErrValidation)
	ErrMissingFoodItem       = fmt.Errorf("%w: food item is required", ErrValidation)
	ErrMissingUnit           = fmt.Errorf("%w: unit is required", ErrValidation)
	ErrInvalidPurchaseDate   = fmt.Errorf("%w: invalid purchase date", ErrValidation)
	ErrInvalidExpiryDate     = fmt.Errorf("%w: invalid expiry date", ErrValidation)
	ErrInvalidWarningWindow  = fmt.Errorf("%w: warning window must not be negative", ErrValidation)
)

type (
	AddInventoryItemRequest struct {
		FoodItem     string  `json:"food_item" validate:"required"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"required"`
		Category     string  `json:"category" validate:"required,category"`
		PurchaseDate string  `json:"purchase_date" validate:"omitempty"`
		ExpiryDate   string  `json:"expiry_date" validate:"omitempty"`
	}

	InventoryItemResponse struct {
		ID              string  `json:"id"`
		FoodItem        string  `json:"food_item"`
		Quantity        float64 `json:"quantity"`
		Unit            string  `json:"unit"`
		Category        string  `json:"category"`
		PurchaseDate    string  `json:"purchase_date"`
		ExpiryDate      string  `json:"expiry_date"`
		IsConsumed      bool    `json:"is_consumed"`
		DaysUntilExpiry int     `json:"days_until_expiry"`
		Status          string  `json:"status"`
	}

	ExpiryWarning struct {
		ID              string `json:"id"`
		FoodItem        string `json:"food_item"`
		ExpiryDate      string `json:"expiry_date"`
		DaysUntilExpiry int    `json:"days_until_expiry"`
		Message         string `json:"message"`
	}
)
