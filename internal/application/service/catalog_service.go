package service

import (
	"context"
	"math"
	"strings"

	"github.com/brightbreeze/billing-api/internal/domain/entity"
	"github.com/brightbreeze/billing-api/pkg/apperror"
	"github.com/brightbreeze/billing-api/pkg/money"
	"github.com/google/uuid"
)

// CatalogService handles category and item management.
type CatalogService struct {
	state *AppState
}

// NewCatalogService creates a new catalog service
func NewCatalogService(state *AppState) *CatalogService {
	return &CatalogService{state: state}
}

// ItemInput carries raw item fields from the caller. Values are normalized
// with the same rules regardless of whether they arrive one at a time or
// through a bulk import.
type ItemInput struct {
	CategoryID  uuid.UUID
	Name        string
	Brand       string
	Price       float64
	GstRate     float64
	Stock       *float64
	Image       string
	Description string
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories(ctx context.Context) []entity.Category {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := make([]entity.Category, len(s.state.categories))
	copy(out, s.state.categories)
	return out
}

// CreateCategory adds a new category.
func (s *CatalogService) CreateCategory(ctx context.Context, name, description string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	category := entity.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	s.state.categories = append(s.state.categories, category)
	s.state.persistCategories(ctx)
	return &category, nil
}

// UpdateCategory renames a category. The ID is immutable.
func (s *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, name, description string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.categories {
		if s.state.categories[i].ID == id {
			s.state.categories[i].Name = name
			s.state.categories[i].Description = strings.TrimSpace(description)
			s.state.persistCategories(ctx)
			category := s.state.categories[i]
			return &category, nil
		}
	}
	return nil, apperror.NewNotFoundError("Category")
}

// DeleteCategory removes a category and cascades to its items. Cart lines
// referencing the removed items are dropped as part of the same operation.
func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	found := false
	categories := s.state.categories[:0]
	for _, category := range s.state.categories {
		if category.ID == id {
			found = true
			continue
		}
		categories = append(categories, category)
	}
	if !found {
		return apperror.NewNotFoundError("Category")
	}
	s.state.categories = categories

	removed := make(map[uuid.UUID]bool)
	items := s.state.items[:0]
	for _, item := range s.state.items {
		if item.CategoryID == id {
			removed[item.ID] = true
			continue
		}
		items = append(items, item)
	}
	s.state.items = items
	s.state.pruneCartLinesLocked(removed)

	s.state.persistCategories(ctx)
	s.state.persistItems(ctx)
	return nil
}

// ListItems returns all catalog items.
func (s *CatalogService) ListItems(ctx context.Context) []entity.Item {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := make([]entity.Item, len(s.state.items))
	copy(out, s.state.items)
	return out
}

// CreateItem adds a normalized item to the catalog.
func (s *CatalogService) CreateItem(ctx context.Context, input ItemInput) (*entity.Item, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if !s.categoryExistsLocked(input.CategoryID) {
		return nil, apperror.NewNotFoundError("Category")
	}

	item := normalizeItem(uuid.New(), input)
	s.state.items = append(s.state.items, item)
	s.state.persistItems(ctx)
	return &item, nil
}

// UpdateItem replaces an item's fields, re-running normalization.
func (s *CatalogService) UpdateItem(ctx context.Context, id uuid.UUID, input ItemInput) (*entity.Item, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if !s.categoryExistsLocked(input.CategoryID) {
		return nil, apperror.NewNotFoundError("Category")
	}

	for i := range s.state.items {
		if s.state.items[i].ID == id {
			s.state.items[i] = normalizeItem(id, input)
			s.state.persistItems(ctx)
			item := s.state.items[i]
			return &item, nil
		}
	}
	return nil, apperror.NewNotFoundError("Item")
}

// DeleteItem removes an item and drops any cart line referencing it.
func (s *CatalogService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	found := false
	items := s.state.items[:0]
	for _, item := range s.state.items {
		if item.ID == id {
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return apperror.NewNotFoundError("Item")
	}
	s.state.items = items
	s.state.pruneCartLinesLocked(map[uuid.UUID]bool{id: true})
	s.state.persistItems(ctx)
	return nil
}

func (s *CatalogService) categoryExistsLocked(id uuid.UUID) bool {
	for _, category := range s.state.categories {
		if category.ID == id {
			return true
		}
	}
	return false
}

// normalizeItem applies the single-record sanitation rules: invalid price
// becomes 0, the GST rate is sanitized, the brand is trimmed and the stock
// value collapses to nil (unmanaged) unless it is a non-negative number.
func normalizeItem(id uuid.UUID, input ItemInput) entity.Item {
	price := input.Price
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		price = 0
	}
	return entity.Item{
		ID:          id,
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Brand:       strings.TrimSpace(input.Brand),
		Price:       price,
		GstRate:     money.SanitizeGstRate(input.GstRate),
		Stock:       entity.SanitizeStock(input.Stock),
		Image:       strings.TrimSpace(input.Image),
		Description: strings.TrimSpace(input.Description),
	}
}
