package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBillNumber(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "BILL20250314092653-0007", GenerateBillNumber(ts, 7))
	assert.Equal(t, "BILL20250314092653-1234", GenerateBillNumber(ts, 1234))
}

func TestGenerateBillNumberCollision(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	// Same second and same series collide; the series increment per sale is
	// what keeps real bills unique.
	assert.Equal(t, GenerateBillNumber(ts, 3), GenerateBillNumber(ts, 3))
	assert.NotEqual(t, GenerateBillNumber(ts, 3), GenerateBillNumber(ts, 4))
	assert.NotEqual(t, GenerateBillNumber(ts, 3), GenerateBillNumber(ts.Add(time.Second), 3))
}

func TestRecordSale(t *testing.T) {
	state := newTestState()
	cart := NewCartService(state)
	ledger := NewLedgerService(state)

	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	ledger.now = func() time.Time { return fixed }

	require.NoError(t, cart.AddItem(testCtx(), teaID))
	require.NoError(t, cart.UpdateQuantity(testCtx(), teaID, 2))
	cart.SetCustomer(testCtx(), "Asha", "98765")

	record, err := ledger.RecordSale(testCtx())
	require.NoError(t, err)

	assert.Equal(t, "BILL20250314092653-0001", record.BillNumber)
	assert.Equal(t, 200.0, record.Subtotal)
	assert.Equal(t, 24.0, record.Tax)
	assert.Equal(t, 224.0, record.Total)
	assert.Equal(t, "Asha", record.Customer.Name)
	require.Len(t, record.Items, 1)
	assert.Equal(t, 2, record.Items[0].Quantity)

	// Stock was decremented, the series advanced exactly once and the cart
	// and customer were reset.
	assert.Equal(t, 3, *state.findItemLocked(teaID).Stock)
	assert.Equal(t, 2, state.settings.BillSeries)
	assert.Empty(t, cart.View(testCtx()).Lines)
	assert.Empty(t, cart.View(testCtx()).Customer.Name)
}

func TestRecordSaleEmptyCart(t *testing.T) {
	state := newTestState()
	ledger := NewLedgerService(state)

	_, err := ledger.RecordSale(testCtx())
	require.Error(t, err)
	assert.Equal(t, "Cart is empty", err.Error())
	assert.Empty(t, state.sales)
	assert.Equal(t, 1, state.settings.BillSeries)
}

func TestRecordSaleStockFloor(t *testing.T) {
	state := newTestState()
	cart := NewCartService(state)
	ledger := NewLedgerService(state)

	require.NoError(t, cart.AddItem(testCtx(), teaID))
	require.NoError(t, cart.UpdateQuantity(testCtx(), teaID, 5))

	// Stock shrank underneath the reservation; the decrement floors at 0
	// rather than going negative.
	state.mu.Lock()
	two := 2
	state.findItemLocked(teaID).Stock = &two
	state.mu.Unlock()

	_, err := ledger.RecordSale(testCtx())
	require.NoError(t, err)
	assert.Equal(t, 0, *state.findItemLocked(teaID).Stock)
}

func TestRecordSaleSeriesIncrementsPerSale(t *testing.T) {
	state := newTestState()
	cart := NewCartService(state)
	ledger := NewLedgerService(state)

	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	ledger.now = func() time.Time { return fixed }

	require.NoError(t, cart.AddItem(testCtx(), coffeeID))
	first, err := ledger.RecordSale(testCtx())
	require.NoError(t, err)

	require.NoError(t, cart.AddItem(testCtx(), coffeeID))
	second, err := ledger.RecordSale(testCtx())
	require.NoError(t, err)

	// Same wall-clock second, distinct bills via the series counter.
	assert.NotEqual(t, first.BillNumber, second.BillNumber)
	assert.Equal(t, 3, state.settings.BillSeries)
}

func TestDeleteSaleSoft(t *testing.T) {
	state := newTestState()
	cart := NewCartService(state)
	ledger := NewLedgerService(state)

	require.NoError(t, cart.AddItem(testCtx(), teaID))
	record, err := ledger.RecordSale(testCtx())
	require.NoError(t, err)

	stockAfterSale := *state.findItemLocked(teaID).Stock
	require.NoError(t, ledger.DeleteSale(testCtx(), record.ID))

	// Direct lookup still works and carries the deleted status.
	got, err := ledger.GetSale(testCtx(), record.ID)
	require.NoError(t, err)
	assert.True(t, got.Status.IsDeleted())
	assert.Equal(t, record.BillNumber, got.BillNumber)

	// Stock is not restored.
	assert.Equal(t, stockAfterSale, *state.findItemLocked(teaID).Stock)

	// Listings and summaries stop counting it.
	listed := ledger.ListSales(testCtx(), SalesFilter{}, nil)
	assert.Empty(t, listed.Items)
	summary := ledger.Summary(testCtx())
	assert.Equal(t, 0, summary.Daily.Count)
}

func TestDeleteSaleUnknown(t *testing.T) {
	state := newTestState()
	ledger := NewLedgerService(state)

	err := ledger.DeleteSale(testCtx(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, "Sale not found", err.Error())
}

func TestListSalesFilters(t *testing.T) {
	state := newTestState()
	cart := NewCartService(state)
	ledger := NewLedgerService(state)

	day1 := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	ledger.now = func() time.Time { return day1 }
	require.NoError(t, cart.AddItem(testCtx(), teaID))
	cart.SetCustomer(testCtx(), "Asha", "98765")
	_, err := ledger.RecordSale(testCtx())
	require.NoError(t, err)

	ledger.now = func() time.Time { return day2 }
	require.NoError(t, cart.AddItem(testCtx(), coffeeID))
	cart.SetCustomer(testCtx(), "Binod", "55555")
	_, err = ledger.RecordSale(testCtx())
	require.NoError(t, err)

	// Newest first.
	all := ledger.ListSales(testCtx(), SalesFilter{}, nil)
	require.Len(t, all.Items, 2)
	assert.Equal(t, "Binod", all.Items[0].Customer.Name)

	// Inclusive date bounds.
	result := ledger.ListSales(testCtx(), SalesFilter{From: "2025-03-15"}, nil)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Binod", result.Items[0].Customer.Name)

	result = ledger.ListSales(testCtx(), SalesFilter{To: "2025-03-14"}, nil)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Asha", result.Items[0].Customer.Name)

	// Customer matches name or phone, case-insensitively.
	result = ledger.ListSales(testCtx(), SalesFilter{Customer: "asha"}, nil)
	assert.Len(t, result.Items, 1)
	result = ledger.ListSales(testCtx(), SalesFilter{Customer: "555"}, nil)
	assert.Len(t, result.Items, 1)

	// Item query matches line name or brand.
	result = ledger.ListSales(testCtx(), SalesFilter{Query: "roast"}, nil)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Binod", result.Items[0].Customer.Name)

	result = ledger.ListSales(testCtx(), SalesFilter{Query: "no-such-item"}, nil)
	assert.Empty(t, result.Items)
}

func TestListSalesCategoryFilter(t *testing.T) {
	state := newTestState()
	cart := NewCartService(state)
	ledger := NewLedgerService(state)

	require.NoError(t, cart.AddItem(testCtx(), teaID))
	_, err := ledger.RecordSale(testCtx())
	require.NoError(t, err)

	categoryID := state.categories[0].ID
	result := ledger.ListSales(testCtx(), SalesFilter{CategoryID: &categoryID}, nil)
	assert.Len(t, result.Items, 1)

	other := uuid.New()
	result = ledger.ListSales(testCtx(), SalesFilter{CategoryID: &other}, nil)
	assert.Empty(t, result.Items)
}

func TestSummaryBuckets(t *testing.T) {
	state := newTestState()
	cart := NewCartService(state)
	ledger := NewLedgerService(state)

	saleTime := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	ledger.now = func() time.Time { return saleTime }
	require.NoError(t, cart.AddItem(testCtx(), teaID))
	_, err := ledger.RecordSale(testCtx())
	require.NoError(t, err)

	// Same day: counted in all three buckets.
	summary := ledger.Summary(testCtx())
	assert.Equal(t, 1, summary.Daily.Count)
	assert.Equal(t, 1, summary.Monthly.Count)
	assert.Equal(t, 1, summary.Yearly.Count)
	assert.Equal(t, 112.0, summary.Daily.Total)

	// A month later: only the yearly bucket still counts it.
	ledger.now = func() time.Time { return saleTime.AddDate(0, 1, 0) }
	summary = ledger.Summary(testCtx())
	assert.Equal(t, 0, summary.Daily.Count)
	assert.Equal(t, 0, summary.Monthly.Count)
	assert.Equal(t, 1, summary.Yearly.Count)
}
