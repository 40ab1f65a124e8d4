package service

import (
	"context"

	"github.com/brightbreeze/billing-api/internal/domain/entity"
	"github.com/brightbreeze/billing-api/internal/infrastructure/kvstore"
	"github.com/brightbreeze/billing-api/internal/infrastructure/replicator"
	"github.com/google/uuid"
)

// newTestState builds an AppState with a known catalog on a volatile store.
func newTestState() *AppState {
	category := entity.Category{ID: uuid.New(), Name: "Beverages"}
	stock := func(n int) *int { return &n }

	return &AppState{
		categories: []entity.Category{category},
		items: []entity.Item{
			{ID: teaID, CategoryID: category.ID, Name: "Tea", Brand: "Chai Co", Price: 100, GstRate: 12, Stock: stock(5)},
			{ID: coffeeID, CategoryID: category.ID, Name: "Coffee", Brand: "Roast Co", Price: 200, GstRate: 18, Stock: stock(30)},
			{ID: sugarID, CategoryID: category.ID, Name: "Sugar", Brand: "Mills", Price: 40, GstRate: 5, Stock: nil},
		},
		sales:    []entity.SaleRecord{},
		settings: DefaultSettings(),
		store:    kvstore.NewMemory(),
		repl:     replicator.Nop{},
	}
}

var (
	teaID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	coffeeID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	sugarID  = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func testCtx() context.Context {
	return context.Background()
}
