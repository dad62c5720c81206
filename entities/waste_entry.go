package entities

import "time"

// WasteEntry is immutable once appended to the waste ledger.
type WasteEntry struct {
	FoodItem  string    `json:"foodItem"`
	Quantity  Quantity  `json:"quantity"`
	Unit      Unit      `json:"unit"`
	Category  Category  `json:"category"`
	Reason    string    `json:"reason"`
	CO2Impact float64   `json:"co2Impact,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
