package entity

import "github.com/google/uuid"

// Category groups catalog items. Deleting a category cascades to its items.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
