package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/brightbreeze/billing-api/internal/domain/entity"
	"github.com/brightbreeze/billing-api/internal/domain/enum"
	"github.com/brightbreeze/billing-api/pkg/apperror"
	"github.com/brightbreeze/billing-api/pkg/pagination"
	"github.com/google/uuid"
)

// LedgerService records completed sales and serves reporting queries. Sale
// records are append-only: normal operation never removes one, it can only
// flip the status to deleted.
type LedgerService struct {
	state *AppState
	now   func() time.Time
}

// NewLedgerService creates a new ledger service
func NewLedgerService(state *AppState) *LedgerService {
	return &LedgerService{state: state, now: time.Now}
}

// GenerateBillNumber formats a bill number from a wall-clock timestamp and
// the shop's bill series counter: BILL<YYYYMMDDHHMMSS>-<series, 4 digits>.
// The format alone does not guarantee uniqueness: two sales within the same
// second and the same series value collide. Uniqueness comes from the ledger
// incrementing the series exactly once per recorded sale, synchronously,
// before the next sale can be recorded.
func GenerateBillNumber(t time.Time, series int) string {
	return fmt.Sprintf("BILL%s-%04d", t.Format("20060102150405"), series)
}

// RecordSale turns the current cart into an immutable ledger entry. On
// success it decrements managed stock (floored at 0), appends the record,
// increments the bill series and clears the cart and customer snapshot. A
// cart that yields no valid line items is rejected with no side effects.
func (s *LedgerService) RecordSale(ctx context.Context) (*entity.SaleRecord, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if len(s.state.cart) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}

	gstEnabled := s.state.settings.GstEnabled
	lineItems := s.state.lineItemsLocked(gstEnabled)
	if len(lineItems) == 0 {
		return nil, apperror.NewBadRequestError("No valid items to record")
	}

	timestamp := s.now()
	series := s.state.settings.BillSeries
	if series < 1 {
		series = 1
	}
	totals := TotalsFromLineItems(lineItems)

	record := entity.SaleRecord{
		ID:         uuid.New(),
		BillNumber: GenerateBillNumber(timestamp, series),
		Timestamp:  timestamp,
		Items:      lineItems,
		Subtotal:   totals.Subtotal,
		Tax:        totals.Tax,
		Total:      totals.Total,
		GstEnabled: gstEnabled,
		Customer:   s.state.customer,
		Status:     enum.SaleStatusActive,
	}

	// Durable one-way stock decrement, floored at 0 even if reservations
	// over-allocated.
	for _, lineItem := range lineItems {
		item := s.state.findItemLocked(lineItem.ItemID)
		if item == nil || !item.IsStockManaged() {
			continue
		}
		remaining := *item.Stock - lineItem.Quantity
		if remaining < 0 {
			remaining = 0
		}
		*item.Stock = remaining
	}

	s.state.sales = append(s.state.sales, record)
	s.state.persistSales(ctx)
	s.state.persistItems(ctx)

	s.state.settings.BillSeries = series + 1
	s.state.persistSettings(ctx)

	s.state.cart = nil
	s.state.customer = entity.Customer{}

	return &record, nil
}

// GetSale returns a ledger record by ID, including soft-deleted ones.
func (s *LedgerService) GetSale(ctx context.Context, id uuid.UUID) (*entity.SaleRecord, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.sales {
		if s.state.sales[i].ID == id {
			record := s.state.sales[i]
			return &record, nil
		}
	}
	return nil, apperror.NewNotFoundError("Sale")
}

// DeleteSale soft-deletes a sale. The record, its bill number and its stock
// decrement stay in place; only summaries and listings stop counting it.
// Stock is deliberately not restored: the goods already left the shop.
func (s *LedgerService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.sales {
		if s.state.sales[i].ID == id {
			s.state.sales[i].Status = enum.SaleStatusDeleted
			s.state.persistSales(ctx)
			return nil
		}
	}
	return apperror.NewNotFoundError("Sale")
}

// SalesFilter narrows a ledger listing. Dates are inclusive YYYY-MM-DD
// bounds compared against the sale's UTC calendar date.
type SalesFilter struct {
	From       string
	To         string
	Customer   string
	Query      string
	CategoryID *uuid.UUID
}

// ListSales returns non-deleted sales matching the filter, newest first.
func (s *LedgerService) ListSales(ctx context.Context, filter SalesFilter, params *pagination.PaginationParams) *pagination.PaginatedResult[entity.SaleRecord] {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	matched := make([]entity.SaleRecord, 0, len(s.state.sales))
	for _, sale := range s.state.sales {
		if sale.Status.IsDeleted() {
			continue
		}
		if !s.matchesLocked(sale, filter) {
			continue
		}
		matched = append(matched, sale)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	if params == nil {
		params = pagination.DefaultPagination()
	}
	return pagination.Slice(matched, params)
}

func (s *LedgerService) matchesLocked(sale entity.SaleRecord, filter SalesFilter) bool {
	saleDate := sale.Timestamp.UTC().Format("2006-01-02")
	if filter.From != "" && saleDate < filter.From {
		return false
	}
	if filter.To != "" && saleDate > filter.To {
		return false
	}

	if query := strings.ToLower(strings.TrimSpace(filter.Customer)); query != "" {
		name := strings.ToLower(sale.Customer.Name)
		phone := strings.ToLower(sale.Customer.Phone)
		if !strings.Contains(name, query) && !strings.Contains(phone, query) {
			return false
		}
	}

	if query := strings.ToLower(strings.TrimSpace(filter.Query)); query != "" {
		found := false
		for _, lineItem := range sale.Items {
			if strings.Contains(strings.ToLower(lineItem.Name), query) ||
				strings.Contains(strings.ToLower(lineItem.Brand), query) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if filter.CategoryID != nil {
		found := false
		for _, lineItem := range sale.Items {
			// Resolved against the current catalog; stale lines
			// simply never match.
			item := s.state.findItemLocked(lineItem.ItemID)
			if item != nil && item.CategoryID == *filter.CategoryID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// PeriodSummary is a total and order count over one reporting period.
type PeriodSummary struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// SalesSummary reports today's, this month's and this year's sales.
// Soft-deleted records are excluded.
type SalesSummary struct {
	Daily   PeriodSummary `json:"daily"`
	Monthly PeriodSummary `json:"monthly"`
	Yearly  PeriodSummary `json:"yearly"`
}

// Summary aggregates non-deleted sales into daily/monthly/yearly buckets
// keyed by UTC calendar date.
func (s *LedgerService) Summary(ctx context.Context) SalesSummary {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	now := s.now().UTC()
	dayKey := now.Format("2006-01-02")
	monthKey := now.Format("2006-01")
	yearKey := now.Format("2006")

	var summary SalesSummary
	for _, sale := range s.state.sales {
		if sale.Status.IsDeleted() {
			continue
		}
		ts := sale.Timestamp.UTC()
		if ts.Format("2006-01-02") == dayKey {
			summary.Daily.Total += sale.Total
			summary.Daily.Count++
		}
		if ts.Format("2006-01") == monthKey {
			summary.Monthly.Total += sale.Total
			summary.Monthly.Count++
		}
		if ts.Format("2006") == yearKey {
			summary.Yearly.Total += sale.Total
			summary.Yearly.Count++
		}
	}
	return summary
}
