package handler

import (
	"github.com/brightbreeze/billing-api/internal/application/service"
	"github.com/brightbreeze/billing-api/internal/presentation/http/dto/request"
	"github.com/brightbreeze/billing-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles shop settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the current shop settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings := h.settingsService.Get(c.Request.Context())
	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings overwrites the shop settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), service.SettingsInput{
		ShopName:    req.ShopName,
		ShopTagline: req.ShopTagline,
		ShopAddress: req.ShopAddress,
		ShopContact: req.ShopContact,
		UpiID:       req.UpiID,
		GstEnabled:  req.GstEnabled,
		GstNo:       req.GstNo,
		BillSeries:  req.BillSeries,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
