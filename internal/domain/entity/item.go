package entity

import (
	"math"

	"github.com/google/uuid"
)

// Item is a catalog entry. Stock is either a tracked non-negative count
// ("managed") or nil, which means availability is unlimited.
type Item struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"categoryId"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Price       float64   `json:"price"`
	GstRate     float64   `json:"gstRate"`
	Stock       *int      `json:"stock"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
}

// IsStockManaged reports whether the item's stock is a tracked count.
func (i *Item) IsStockManaged() bool {
	return i != nil && i.Stock != nil && *i.Stock >= 0
}

// SanitizeStock normalizes a raw stock value. Missing, negative or
// non-finite input means unmanaged (nil); anything else is floored to a
// non-negative integer.
func SanitizeStock(raw *float64) *int {
	if raw == nil {
		return nil
	}
	v := *raw
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	stock := int(math.Floor(v))
	return &stock
}
