package service

import (
	"context"
	"strings"

	"github.com/brightbreeze/billing-api/internal/domain/entity"
	"github.com/brightbreeze/billing-api/pkg/apperror"
)

// SettingsService manages the single shop settings record.
type SettingsService struct {
	state *AppState
}

// NewSettingsService creates a new settings service
func NewSettingsService(state *AppState) *SettingsService {
	return &SettingsService{state: state}
}

// Get returns the current settings.
func (s *SettingsService) Get(ctx context.Context) entity.Settings {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.settings
}

// SettingsInput carries a full settings update.
type SettingsInput struct {
	ShopName    string
	ShopTagline string
	ShopAddress string
	ShopContact string
	UpiID       string
	GstEnabled  bool
	GstNo       string
	BillSeries  int
}

// Update overwrites the settings record. The UPI ID is sanitized and, when
// present, validated; the bill series must stay a positive counter.
func (s *SettingsService) Update(ctx context.Context, input SettingsInput) (entity.Settings, error) {
	if input.BillSeries < 1 {
		return entity.Settings{}, apperror.NewBadRequestError("Bill series must be a positive number")
	}

	upiID := SanitizeUpiID(input.UpiID)
	if upiID != "" && !IsValidUpiID(upiID) {
		return entity.Settings{}, apperror.NewBadRequestError("Invalid UPI ID")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.settings = entity.Settings{
		ShopName:    strings.TrimSpace(input.ShopName),
		ShopTagline: strings.TrimSpace(input.ShopTagline),
		ShopAddress: strings.TrimSpace(input.ShopAddress),
		ShopContact: strings.TrimSpace(input.ShopContact),
		UpiID:       upiID,
		GstEnabled:  input.GstEnabled,
		GstNo:       strings.TrimSpace(input.GstNo),
		BillSeries:  input.BillSeries,
	}
	s.state.persistSettings(ctx)
	return s.state.settings, nil
}
