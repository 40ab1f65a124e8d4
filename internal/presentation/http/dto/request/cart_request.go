package request

// AddCartItemRequest represents adding one catalog item to the cart
type AddCartItemRequest struct {
	ItemID string `json:"item_id" binding:"required,uuid"`
}

// AddCustomLineRequest represents adding an ad hoc cart line
type AddCustomLineRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	GstRate  float64 `json:"gst_rate"`
}

// UpdateQuantityRequest represents a cart line quantity change. Zero or
// negative removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateLineGstRequest represents a per-line GST rate override
type UpdateLineGstRequest struct {
	GstRate float64 `json:"gst_rate"`
}

// UpdateLinePriceRequest represents a per-line unit price override
type UpdateLinePriceRequest struct {
	Price float64 `json:"price"`
}

// CustomerRequest represents the customer snapshot for the next sale
type CustomerRequest struct {
	Name  string `json:"name" binding:"omitempty,max=255"`
	Phone string `json:"phone" binding:"omitempty,max=32"`
}
