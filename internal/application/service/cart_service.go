package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/brightbreeze/billing-api/internal/domain/entity"
	"github.com/brightbreeze/billing-api/pkg/apperror"
	"github.com/brightbreeze/billing-api/pkg/money"
	"github.com/google/uuid"
)

// CartService owns the transient working cart and its stock reservations.
// Availability is always derived live from catalog stock minus cart
// quantities; it is never cached on the item.
type CartService struct {
	state *AppState
}

// NewCartService creates a new cart service
func NewCartService(state *AppState) *CartService {
	return &CartService{state: state}
}

// CartLineView is a cart line resolved against the current catalog.
type CartLineView struct {
	ItemID         uuid.UUID `json:"itemId"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand,omitempty"`
	Quantity       int       `json:"quantity"`
	UnitPrice      float64   `json:"unitPrice"`
	GstRate        float64   `json:"gstRate"`
	IsCustom       bool      `json:"isCustom,omitempty"`
	AvailableStock *int      `json:"availableStock,omitempty"`
}

// CartView is the cart plus its live totals and customer snapshot.
type CartView struct {
	Lines    []CartLineView  `json:"lines"`
	Totals   entity.Totals   `json:"totals"`
	Customer entity.Customer `json:"customer"`
}

// View resolves the cart against the catalog. Lines referencing items that
// no longer exist are skipped, not errors.
func (s *CartService) View(ctx context.Context) CartView {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	view := CartView{
		Lines:    make([]CartLineView, 0, len(s.state.cart)),
		Customer: s.state.customer,
	}
	for _, line := range s.state.cart {
		lv := CartLineView{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			GstRate:  line.GstRate,
			IsCustom: line.IsCustom,
		}
		if line.IsCustom {
			lv.Name = line.Name
			if line.CustomPrice != nil {
				lv.UnitPrice = *line.CustomPrice
			}
		} else {
			item := s.state.findItemLocked(line.ItemID)
			if item == nil {
				continue
			}
			lv.Name = item.Name
			lv.Brand = item.Brand
			lv.UnitPrice = item.Price
			if line.CustomPrice != nil {
				lv.UnitPrice = *line.CustomPrice
			}
			if available, managed := s.state.availableStockLocked(line.ItemID); managed {
				remaining := available
				lv.AvailableStock = &remaining
			}
		}
		view.Lines = append(view.Lines, lv)
	}

	view.Totals = TotalsFromLineItems(s.state.lineItemsLocked(s.state.settings.GstEnabled))
	return view
}

// AvailableStock returns the live remaining stock for an item. The second
// result is false for unmanaged (unlimited) items.
func (s *CartService) AvailableStock(ctx context.Context, itemID uuid.UUID) (int, bool) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.availableStockLocked(itemID)
}

// AddItem puts one unit of a catalog item in the cart, or increments an
// existing line by one. Rejected without mutation when the item's managed
// stock is exhausted. The line's GST rate is captured from the item on first
// add and is independent afterwards.
func (s *CartService) AddItem(ctx context.Context, itemID uuid.UUID) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	item := s.state.findItemLocked(itemID)
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}

	if available, managed := s.state.availableStockLocked(itemID); managed && available <= 0 {
		return apperror.NewBadRequestError("Item is out of stock")
	}

	for i := range s.state.cart {
		if s.state.cart[i].ItemID == itemID && !s.state.cart[i].IsCustom {
			if item.IsStockManaged() && s.state.cart[i].Quantity+1 > *item.Stock {
				return apperror.NewBadRequestError("Insufficient stock available")
			}
			s.state.cart[i].Quantity++
			return nil
		}
	}

	s.state.cart = append(s.state.cart, entity.CartLine{
		ItemID:   itemID,
		Quantity: 1,
		GstRate:  money.SanitizeGstRate(item.GstRate),
	})
	return nil
}

// AddCustomLine adds an ad hoc line with no backing catalog item and no
// stock constraint.
func (s *CartService) AddCustomLine(ctx context.Context, name string, price float64, quantity int, gstRate float64) (*entity.CartLine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, apperror.NewBadRequestError("Price must be a valid number")
	}
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be greater than zero")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	line := entity.CartLine{
		ItemID:      uuid.New(),
		Name:        name,
		Quantity:    quantity,
		GstRate:     money.SanitizeGstRate(gstRate),
		CustomPrice: &price,
		IsCustom:    true,
	}
	s.state.cart = append(s.state.cart, line)
	return &line, nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line; a quantity above a managed item's stock is rejected without
// mutation.
func (s *CartService) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(itemID)
		return nil
	}

	for i := range s.state.cart {
		if s.state.cart[i].ItemID != itemID {
			continue
		}
		if !s.state.cart[i].IsCustom {
			item := s.state.findItemLocked(itemID)
			if item != nil && item.IsStockManaged() && quantity > *item.Stock {
				return apperror.NewBadRequestError(fmt.Sprintf("Only %d unit(s) available in stock", *item.Stock))
			}
		}
		s.state.cart[i].Quantity = quantity
		return nil
	}
	return apperror.NewNotFoundError("Cart line")
}

// UpdateLineGst overrides a line's GST rate. A no-op while GST is globally
// disabled.
func (s *CartService) UpdateLineGst(ctx context.Context, itemID uuid.UUID, gstRate float64) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if !s.state.settings.GstEnabled {
		return nil
	}
	for i := range s.state.cart {
		if s.state.cart[i].ItemID == itemID {
			s.state.cart[i].GstRate = money.SanitizeGstRate(gstRate)
			return nil
		}
	}
	return apperror.NewNotFoundError("Cart line")
}

// UpdateLinePrice overrides a line's unit price for this sale only.
func (s *CartService) UpdateLinePrice(ctx context.Context, itemID uuid.UUID, price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return apperror.NewBadRequestError("Price must be a valid number")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.cart {
		if s.state.cart[i].ItemID == itemID {
			override := price
			s.state.cart[i].CustomPrice = &override
			return nil
		}
	}
	return apperror.NewNotFoundError("Cart line")
}

// Remove drops a line unconditionally.
func (s *CartService) Remove(ctx context.Context, itemID uuid.UUID) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.removeLocked(itemID)
}

// Clear empties the cart. Confirmation belongs to the caller, not here.
func (s *CartService) Clear(ctx context.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.cart = nil
}

// SetCustomer updates the transient customer snapshot for the next sale.
func (s *CartService) SetCustomer(ctx context.Context, name, phone string) entity.Customer {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.customer = entity.Customer{
		Name:  strings.TrimSpace(name),
		Phone: strings.TrimSpace(phone),
	}
	return s.state.customer
}

func (s *CartService) removeLocked(itemID uuid.UUID) {
	kept := s.state.cart[:0]
	for _, line := range s.state.cart {
		if line.ItemID == itemID {
			continue
		}
		kept = append(kept, line)
	}
	s.state.cart = kept
}
