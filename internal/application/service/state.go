package service

import (
	"context"
	"log"
	"sync"

	"github.com/brightbreeze/billing-api/internal/domain/entity"
	"github.com/brightbreeze/billing-api/internal/infrastructure/kvstore"
	"github.com/brightbreeze/billing-api/internal/infrastructure/replicator"
	"github.com/google/uuid"
)

// AppState is the single owner of all mutable POS state. Every mutation goes
// through a service method, runs start-to-finish under the lock, persists
// synchronously through the snapshot store and then enqueues a best-effort
// replication. Nothing outside this package assigns to these fields.
type AppState struct {
	mu         sync.Mutex
	categories []entity.Category
	items      []entity.Item
	sales      []entity.SaleRecord
	settings   entity.Settings
	cart       []entity.CartLine
	customer   entity.Customer

	store kvstore.Store
	repl  replicator.Replicator
}

// NewAppState loads the four persisted records, seeding defaults for any
// record that is missing or unreadable. A corrupt store is logged and the
// application continues on the in-memory defaults.
func NewAppState(ctx context.Context, store kvstore.Store, repl replicator.Replicator) *AppState {
	s := &AppState{store: store, repl: repl}

	if err := store.Get(ctx, kvstore.KeyCategories, &s.categories); err != nil || len(s.categories) == 0 {
		if err != nil && err != kvstore.ErrNotFound {
			log.Printf("state: failed to load categories, seeding defaults: %v", err)
		}
		s.categories = defaultCategories()
		s.persist(ctx, kvstore.KeyCategories, s.categories)
	}

	if err := store.Get(ctx, kvstore.KeyItems, &s.items); err != nil || len(s.items) == 0 {
		if err != nil && err != kvstore.ErrNotFound {
			log.Printf("state: failed to load items, seeding defaults: %v", err)
		}
		s.items = defaultItems(s.categories)
		s.persist(ctx, kvstore.KeyItems, s.items)
	}

	if err := store.Get(ctx, kvstore.KeySales, &s.sales); err != nil {
		if err != kvstore.ErrNotFound {
			log.Printf("state: failed to load sales, starting empty: %v", err)
		}
		s.sales = []entity.SaleRecord{}
	}

	if err := store.Get(ctx, kvstore.KeySettings, &s.settings); err != nil {
		if err != kvstore.ErrNotFound {
			log.Printf("state: failed to load settings, seeding defaults: %v", err)
		}
		s.settings = DefaultSettings()
		s.persist(ctx, kvstore.KeySettings, s.settings)
	}
	if s.settings.BillSeries < 1 {
		s.settings.BillSeries = 1
	}

	return s
}

// DefaultSettings returns the settings a fresh shop starts with.
func DefaultSettings() entity.Settings {
	return entity.Settings{
		ShopName:    "Company",
		ShopTagline: "Shop",
		ShopContact: "Phone: +91-90000 00000",
		UpiID:       "shop@upi",
		GstEnabled:  true,
		BillSeries:  1,
	}
}

func defaultCategories() []entity.Category {
	return []entity.Category{
		{ID: uuid.New(), Name: "Category 1", Description: "Description for Category 1"},
		{ID: uuid.New(), Name: "Category 2", Description: "Description for Category 2"},
	}
}

func defaultItems(categories []entity.Category) []entity.Item {
	if len(categories) == 0 {
		return []entity.Item{}
	}
	first := categories[0].ID
	second := first
	if len(categories) > 1 {
		second = categories[1].ID
	}
	stock := func(n int) *int { return &n }
	return []entity.Item{
		{ID: uuid.New(), CategoryID: first, Name: "Item 1", Brand: "Brand A", Price: 100, GstRate: 12, Stock: stock(50), Description: "Description for Item 1"},
		{ID: uuid.New(), CategoryID: first, Name: "Item 2", Brand: "Brand B", Price: 200, GstRate: 18, Stock: stock(30), Description: "Description for Item 2"},
		{ID: uuid.New(), CategoryID: second, Name: "Item 3", Brand: "Brand C", Price: 1500, GstRate: 18, Stock: stock(10), Description: "Description for Item 3"},
	}
}

// persist writes a full record through the store. A write failure is logged
// and the in-memory state stays authoritative; replication is fire-and-forget
// either way.
func (s *AppState) persist(ctx context.Context, key string, value interface{}) {
	if err := s.store.Put(ctx, key, value); err != nil {
		log.Printf("state: failed to persist %q: %v", key, err)
	}
	s.repl.Publish(key, value)
}

func (s *AppState) persistCategories(ctx context.Context) { s.persist(ctx, kvstore.KeyCategories, s.categories) }
func (s *AppState) persistItems(ctx context.Context)      { s.persist(ctx, kvstore.KeyItems, s.items) }
func (s *AppState) persistSales(ctx context.Context)      { s.persist(ctx, kvstore.KeySales, s.sales) }
func (s *AppState) persistSettings(ctx context.Context)   { s.persist(ctx, kvstore.KeySettings, s.settings) }

// findItemLocked returns a pointer into the items slice, or nil.
func (s *AppState) findItemLocked(id uuid.UUID) *entity.Item {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

// cartQuantityLocked sums the cart quantities reserved against an item.
func (s *AppState) cartQuantityLocked(itemID uuid.UUID) int {
	total := 0
	for _, line := range s.cart {
		if line.ItemID == itemID {
			total += line.Quantity
		}
	}
	return total
}

// availableStockLocked returns the live derived availability for an item:
// managed stock minus cart reservations, floored at 0. The second result is
// false for unmanaged (unlimited) items, in which case the count is
// meaningless. Always recomputed, never cached.
func (s *AppState) availableStockLocked(itemID uuid.UUID) (int, bool) {
	item := s.findItemLocked(itemID)
	if item == nil || !item.IsStockManaged() {
		return 0, false
	}
	remaining := *item.Stock - s.cartQuantityLocked(itemID)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// pruneCartLinesLocked drops cart lines referencing removed catalog items.
// Custom lines are self-contained and never pruned.
func (s *AppState) pruneCartLinesLocked(removed map[uuid.UUID]bool) {
	if len(removed) == 0 {
		return
	}
	kept := s.cart[:0]
	for _, line := range s.cart {
		if !line.IsCustom && removed[line.ItemID] {
			continue
		}
		kept = append(kept, line)
	}
	s.cart = kept
}

// lineItemsLocked prices the current cart. Lines referencing items that no
// longer exist are skipped rather than failing; custom lines carry their own
// name and price. Zero-quantity lines produce no output.
func (s *AppState) lineItemsLocked(gstEnabled bool) []entity.LineItem {
	lineItems := make([]entity.LineItem, 0, len(s.cart))
	for _, line := range s.cart {
		var (
			name  string
			brand string
			price float64
		)
		if line.IsCustom {
			name = line.Name
			brand = "Manual"
			price = 0
			if line.CustomPrice != nil {
				price = *line.CustomPrice
			}
		} else {
			item := s.findItemLocked(line.ItemID)
			if item == nil {
				continue
			}
			name = item.Name
			brand = item.Brand
			price = item.Price
			if line.CustomPrice != nil {
				price = *line.CustomPrice
			}
		}

		lineItem := BuildLineItem(line.ItemID, name, brand, price, line.Quantity, line.GstRate, gstEnabled)
		if lineItem == nil {
			continue
		}
		lineItems = append(lineItems, *lineItem)
	}
	return lineItems
}
