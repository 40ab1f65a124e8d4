package request

import "github.com/brightbreeze/billing-api/internal/application/service"

// CategoryRequest represents a category create or update request
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// ItemRequest represents an item create or update request. Stock is a
// pointer so an absent or null value means the item is not stock-managed.
type ItemRequest struct {
	CategoryID  string   `json:"category_id" binding:"required,uuid"`
	Name        string   `json:"name" binding:"required,max=255"`
	Brand       string   `json:"brand" binding:"omitempty,max=255"`
	Price       float64  `json:"price"`
	GstRate     float64  `json:"gst_rate"`
	Stock       *float64 `json:"stock"`
	Image       string   `json:"image" binding:"omitempty,max=2048"`
	Description string   `json:"description" binding:"omitempty,max=1000"`
}

// ImportRequest represents a bulk catalog import request
type ImportRequest struct {
	Categories []service.CategoryRow `json:"categories"`
	Items      []service.ItemRow     `json:"items"`
}
