package service

import (
	"context"
	"strings"

	"github.com/brightbreeze/billing-api/internal/domain/entity"
	"github.com/brightbreeze/billing-api/pkg/apperror"
	"github.com/google/uuid"
)

// CategoryRow is one parsed category from a bulk import.
type CategoryRow struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ItemRow is one parsed item from a bulk import. Category is matched by
// name, case-insensitively; unknown names create categories on the fly.
type ItemRow struct {
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       float64  `json:"price"`
	GstRate     float64  `json:"gst_rate"`
	Stock       *float64 `json:"stock"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

// ImportSummary reports what a bulk import did.
type ImportSummary struct {
	CategoriesCreated int `json:"categories_created"`
	CategoriesUpdated int `json:"categories_updated"`
	ItemsCreated      int `json:"items_created"`
	ItemsUpdated      int `json:"items_updated"`
}

// ImportCatalog bulk-loads parsed rows using the same normalization rules as
// single-record creation. Categories upsert by case-insensitive name; items
// upsert by case-insensitive name+brand. Rows without a name are skipped.
func (s *CatalogService) ImportCatalog(ctx context.Context, categoryRows []CategoryRow, itemRows []ItemRow) (*ImportSummary, error) {
	if len(categoryRows) == 0 && len(itemRows) == 0 {
		return nil, apperror.NewBadRequestError("Nothing to import")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	summary := &ImportSummary{}

	categoryIndex := make(map[string]int, len(s.state.categories))
	for i, category := range s.state.categories {
		categoryIndex[strings.ToLower(strings.TrimSpace(category.Name))] = i
	}

	addCategory := func(name, description string) int {
		s.state.categories = append(s.state.categories, entity.Category{
			ID:          uuid.New(),
			Name:        name,
			Description: description,
		})
		idx := len(s.state.categories) - 1
		categoryIndex[strings.ToLower(name)] = idx
		return idx
	}

	for _, row := range categoryRows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		description := strings.TrimSpace(row.Description)
		if idx, ok := categoryIndex[strings.ToLower(name)]; ok {
			s.state.categories[idx].Description = description
			summary.CategoriesUpdated++
		} else {
			addCategory(name, description)
			summary.CategoriesCreated++
		}
	}

	itemKey := func(name, brand string) string {
		return strings.ToLower(strings.TrimSpace(name)) + "\x00" + strings.ToLower(strings.TrimSpace(brand))
	}
	itemIndex := make(map[string]int, len(s.state.items))
	for i, item := range s.state.items {
		itemIndex[itemKey(item.Name, item.Brand)] = i
	}

	for _, row := range itemRows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}

		categoryName := strings.TrimSpace(row.Category)
		idx, ok := categoryIndex[strings.ToLower(categoryName)]
		if !ok {
			switch {
			case categoryName != "":
				idx = addCategory(categoryName, "")
				summary.CategoriesCreated++
			case len(s.state.categories) > 0:
				idx = 0
			default:
				idx = addCategory("General", "")
				summary.CategoriesCreated++
			}
		}

		normalized := normalizeItem(uuid.New(), ItemInput{
			CategoryID:  s.state.categories[idx].ID,
			Name:        name,
			Brand:       row.Brand,
			Price:       row.Price,
			GstRate:     row.GstRate,
			Stock:       row.Stock,
			Image:       row.Image,
			Description: row.Description,
		})

		if existing, ok := itemIndex[itemKey(name, row.Brand)]; ok {
			normalized.ID = s.state.items[existing].ID
			s.state.items[existing] = normalized
			summary.ItemsUpdated++
		} else {
			s.state.items = append(s.state.items, normalized)
			itemIndex[itemKey(normalized.Name, normalized.Brand)] = len(s.state.items) - 1
			summary.ItemsCreated++
		}
	}

	s.state.persistCategories(ctx)
	s.state.persistItems(ctx)
	return summary, nil
}
