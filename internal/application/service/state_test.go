package service

import (
	"testing"

	"github.com/brightbreeze/billing-api/internal/infrastructure/kvstore"
	"github.com/brightbreeze/billing-api/internal/infrastructure/replicator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppStateSeedsDefaults(t *testing.T) {
	store := kvstore.NewMemory()
	state := NewAppState(testCtx(), store, replicator.Nop{})

	assert.NotEmpty(t, state.categories)
	assert.NotEmpty(t, state.items)
	assert.Empty(t, state.sales)
	assert.Equal(t, DefaultSettings().ShopName, state.settings.ShopName)
	assert.Equal(t, 1, state.settings.BillSeries)

	// Seeded defaults are written back to the store.
	var persisted []map[string]interface{}
	require.NoError(t, store.Get(testCtx(), kvstore.KeyItems, &persisted))
	assert.Len(t, persisted, len(state.items))
}

func TestAppStateReload(t *testing.T) {
	store := kvstore.NewMemory()
	state := NewAppState(testCtx(), store, replicator.Nop{})

	cart := NewCartService(state)
	ledger := NewLedgerService(state)

	require.NoError(t, cart.AddItem(testCtx(), state.items[0].ID))
	record, err := ledger.RecordSale(testCtx())
	require.NoError(t, err)

	// A fresh state over the same store sees the recorded sale and the
	// advanced bill series.
	reloaded := NewAppState(testCtx(), store, replicator.Nop{})
	require.Len(t, reloaded.sales, 1)
	assert.Equal(t, record.BillNumber, reloaded.sales[0].BillNumber)
	assert.Equal(t, 2, reloaded.settings.BillSeries)
	assert.Equal(t, *state.items[0].Stock, *reloaded.items[0].Stock)
}

func TestAppStateBillSeriesFloor(t *testing.T) {
	store := kvstore.NewMemory()
	require.NoError(t, store.Put(testCtx(), kvstore.KeySettings, DefaultSettings()))

	var settings = DefaultSettings()
	settings.BillSeries = 0
	require.NoError(t, store.Put(testCtx(), kvstore.KeySettings, settings))

	state := NewAppState(testCtx(), store, replicator.Nop{})
	assert.Equal(t, 1, state.settings.BillSeries)
}
