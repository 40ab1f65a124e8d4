package handler

import (
	"github.com/brightbreeze/billing-api/internal/application/service"
	"github.com/brightbreeze/billing-api/internal/presentation/http/dto/request"
	"github.com/brightbreeze/billing-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler handles category and item HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCategories returns all categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories := h.catalogService.ListCategories(c.Request.Context())
	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory adds a new category
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// UpdateCategory renames a category
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.catalogService.UpdateCategory(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory removes a category and its items
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category deleted successfully", nil)
}

// ListItems returns all catalog items
func (h *CatalogHandler) ListItems(c *gin.Context) {
	items := h.catalogService.ListItems(c.Request.Context())
	response.OK(c, "Items retrieved successfully", items)
}

// CreateItem adds a new catalog item
func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, ok := itemInputFromRequest(req)
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	item, err := h.catalogService.CreateItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// UpdateItem replaces an item's fields
func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, ok := itemInputFromRequest(req)
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	item, err := h.catalogService.UpdateItem(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// DeleteItem removes a catalog item
func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.catalogService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item deleted successfully", nil)
}

// ImportCatalog bulk-loads categories and items
func (h *CatalogHandler) ImportCatalog(c *gin.Context) {
	var req request.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	summary, err := h.catalogService.ImportCatalog(c.Request.Context(), req.Categories, req.Items)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Catalog imported successfully", summary)
}

func itemInputFromRequest(req request.ItemRequest) (service.ItemInput, bool) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return service.ItemInput{}, false
	}
	return service.ItemInput{
		CategoryID:  categoryID,
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		GstRate:     req.GstRate,
		Stock:       req.Stock,
		Image:       req.Image,
		Description: req.Description,
	}, true
}
