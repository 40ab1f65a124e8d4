package handler

import (
	"github.com/brightbreeze/billing-api/internal/application/service"
	"github.com/brightbreeze/billing-api/internal/presentation/http/dto/request"
	"github.com/brightbreeze/billing-api/internal/presentation/http/dto/response"
	"github.com/brightbreeze/billing-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SalesHandler handles checkout and ledger HTTP requests
type SalesHandler struct {
	ledgerService  *service.LedgerService
	invoiceService *service.InvoiceService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(ledgerService *service.LedgerService, invoiceService *service.InvoiceService) *SalesHandler {
	return &SalesHandler{ledgerService: ledgerService, invoiceService: invoiceService}
}

// Checkout records the current cart as a sale
func (h *SalesHandler) Checkout(c *gin.Context) {
	record, err := h.ledgerService.RecordSale(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", record)
}

// ListSales returns non-deleted sales matching the filter, newest first
func (h *SalesHandler) ListSales(c *gin.Context) {
	var req request.SalesFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	filter := service.SalesFilter{
		From:     req.From,
		To:       req.To,
		Customer: req.Customer,
		Query:    req.Query,
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		filter.CategoryID = &categoryID
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	params.Validate()

	result := h.ledgerService.ListSales(c.Request.Context(), filter, params)
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// GetSummary returns daily, monthly and yearly sales totals
func (h *SalesHandler) GetSummary(c *gin.Context) {
	summary := h.ledgerService.Summary(c.Request.Context())
	response.OK(c, "Summary retrieved successfully", summary)
}

// GetSale returns a sale by ID, including soft-deleted ones
func (h *SalesHandler) GetSale(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	record, err := h.ledgerService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", record)
}

// DeleteSale soft-deletes a sale
func (h *SalesHandler) DeleteSale(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.ledgerService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale deleted successfully", nil)
}

// GetInvoice rebuilds the invoice model for a recorded sale
func (h *SalesHandler) GetInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	model, err := h.invoiceService.ForSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", model)
}

// PreviewInvoice builds an invoice model from the live cart
func (h *SalesHandler) PreviewInvoice(c *gin.Context) {
	model := h.invoiceService.Preview(c.Request.Context())
	response.OK(c, "Invoice preview generated successfully", model)
}
