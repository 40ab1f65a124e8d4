package handler

import (
	"github.com/brightbreeze/billing-api/internal/application/service"
	"github.com/brightbreeze/billing-api/internal/presentation/http/dto/request"
	"github.com/brightbreeze/billing-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler handles cart HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart returns the current cart with live totals
func (h *CartHandler) GetCart(c *gin.Context) {
	view := h.cartService.View(c.Request.Context())
	response.OK(c, "Cart retrieved successfully", view)
}

// AddItem puts one unit of a catalog item in the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.cartService.AddItem(c.Request.Context(), itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", h.cartService.View(c.Request.Context()))
}

// AddCustomLine adds an ad hoc line with no backing catalog item
func (h *CartHandler) AddCustomLine(c *gin.Context) {
	var req request.AddCustomLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	line, err := h.cartService.AddCustomLine(c.Request.Context(), req.Name, req.Price, req.Quantity, req.GstRate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Custom item added to cart", line)
}

// UpdateQuantity sets a cart line's quantity
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.cartService.UpdateQuantity(c.Request.Context(), itemID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated successfully", h.cartService.View(c.Request.Context()))
}

// UpdateLineGst overrides a cart line's GST rate
func (h *CartHandler) UpdateLineGst(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateLineGstRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.cartService.UpdateLineGst(c.Request.Context(), itemID, req.GstRate); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated successfully", h.cartService.View(c.Request.Context()))
}

// UpdateLinePrice overrides a cart line's unit price for this sale
func (h *CartHandler) UpdateLinePrice(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateLinePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.cartService.UpdateLinePrice(c.Request.Context(), itemID, req.Price); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated successfully", h.cartService.View(c.Request.Context()))
}

// RemoveItem drops a cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	h.cartService.Remove(c.Request.Context(), itemID)
	response.OK(c, "Item removed from cart", h.cartService.View(c.Request.Context()))
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cartService.Clear(c.Request.Context())
	response.OK(c, "Cart cleared successfully", nil)
}

// SetCustomer updates the customer snapshot for the next sale
func (h *CartHandler) SetCustomer(c *gin.Context) {
	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer := h.cartService.SetCustomer(c.Request.Context(), req.Name, req.Phone)
	response.OK(c, "Customer updated successfully", customer)
}

// GetAvailableStock returns live remaining stock for an item
func (h *CartHandler) GetAvailableStock(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	available, managed := h.cartService.AvailableStock(c.Request.Context(), itemID)
	if !managed {
		response.OK(c, "Stock retrieved successfully", gin.H{"managed": false})
		return
	}
	response.OK(c, "Stock retrieved successfully", gin.H{"managed": true, "available": available})
}
