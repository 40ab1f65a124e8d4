package entity

import "github.com/google/uuid"

// CartLine is a transient entry in the working cart. It either references a
// catalog item by ID or is a custom line with its own synthetic ID, a name
// and a price, not backed by any catalog item.
//
// GstRate is captured from the item when the line is first added and is an
// independent per-line value from then on. CustomPrice, when set, overrides
// the item's catalog price for this line.
type CartLine struct {
	ItemID      uuid.UUID `json:"itemId"`
	Name        string    `json:"name,omitempty"`
	Quantity    int       `json:"quantity"`
	GstRate     float64   `json:"gstRate"`
	CustomPrice *float64  `json:"customPrice,omitempty"`
	IsCustom    bool      `json:"isCustom,omitempty"`
}

// Customer is the transient customer snapshot attached to a checkout.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
