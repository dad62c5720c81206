package entities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type Unit string

const (
	UnitKilograms Unit = "kg"
	UnitGrams     Unit = "g"
	UnitCount     Unit = "count"
)

// ItemID is a string id. Older browser exports stored millisecond
// timestamps as JSON numbers, those decode into their decimal string.
type ItemID string

func (id *ItemID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid item id %s", string(data))
	}
	*id = ItemID(n.String())
	return nil
}

// Quantity decodes from either a JSON number or a numeric string.
type Quantity float64

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*q = Quantity(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid quantity %s", string(data))
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	*q = Quantity(f)
	return nil
}

type InventoryItem struct {
	ID           ItemID   `json:"id"`
	FoodItem     string   `json:"foodItem"`
	Quantity     Quantity `json:"quantity"`
	Unit         Unit     `json:"unit"`
	Category     Category `json:"category"`
	PurchaseDate Date     `json:"purchaseDate"`
	ExpiryDate   Date     `json:"expiryDate"`
	IsConsumed   bool     `json:"isConsumed"`
}
