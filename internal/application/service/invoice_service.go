package service

import (
	"context"
	"time"

	"github.com/brightbreeze/billing-api/internal/domain/entity"
	"github.com/brightbreeze/billing-api/pkg/apperror"
	"github.com/google/uuid"
)

// WalkInCustomerName is the sentinel identity used when no customer name
// was captured.
const WalkInCustomerName = "Walk-in Customer"

// InvoiceService assembles presentation-agnostic invoice models for the
// rendering collaborator, either from the live cart or from a recorded sale.
type InvoiceService struct {
	state *AppState
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(state *AppState) *InvoiceService {
	return &InvoiceService{state: state}
}

// BuildInvoiceModel is a pure projection: no validation beyond defaulting,
// no side effects. Upstream sanitization is trusted. A blank customer name
// becomes the walk-in sentinel and a blank shop name falls back to the
// default.
func BuildInvoiceModel(lineItems []entity.LineItem, totals entity.Totals, timestamp time.Time, billNumber string, customer entity.Customer, gstEnabled bool, settings entity.Settings) entity.InvoiceModel {
	if customer.Name == "" {
		customer.Name = WalkInCustomerName
	}
	if customer.Phone == "" {
		customer.Phone = "N/A"
	}

	shopName := settings.ShopName
	if shopName == "" {
		shopName = DefaultSettings().ShopName
	}

	return entity.InvoiceModel{
		ShopName:    shopName,
		ShopTagline: settings.ShopTagline,
		ShopAddress: settings.ShopAddress,
		ShopContact: settings.ShopContact,
		GstNo:       settings.GstNo,
		GstEnabled:  gstEnabled,
		Items:       lineItems,
		Totals:      totals,
		Timestamp:   timestamp,
		BillNumber:  billNumber,
		Customer:    customer,
	}
}

// ForSale rebuilds the invoice model for a recorded sale (ledger playback).
// Soft-deleted sales can still be played back by direct lookup.
func (s *InvoiceService) ForSale(ctx context.Context, id uuid.UUID) (*entity.InvoiceModel, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.sales {
		if s.state.sales[i].ID != id {
			continue
		}
		sale := s.state.sales[i]
		model := BuildInvoiceModel(
			sale.Items,
			entity.Totals{Subtotal: sale.Subtotal, Tax: sale.Tax, Total: sale.Total},
			sale.Timestamp,
			sale.BillNumber,
			sale.Customer,
			sale.GstEnabled,
			s.state.settings,
		)
		model.UpiURI = BuildUpiURI(s.state.settings.UpiID, sale.Total)
		return &model, nil
	}
	return nil, apperror.NewNotFoundError("Sale")
}

// Preview builds an invoice model from the live cart, without a bill
// number. An empty cart is benign here: the model simply totals to zero.
func (s *InvoiceService) Preview(ctx context.Context) *entity.InvoiceModel {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	gstEnabled := s.state.settings.GstEnabled
	lineItems := s.state.lineItemsLocked(gstEnabled)
	totals := TotalsFromLineItems(lineItems)

	model := BuildInvoiceModel(lineItems, totals, time.Now(), "", s.state.customer, gstEnabled, s.state.settings)
	model.UpiURI = BuildUpiURI(s.state.settings.UpiID, totals.Total)
	return &model
}
