package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettings(t *testing.T) {
	state := newTestState()
	settings := NewSettingsService(state)

	updated, err := settings.Update(testCtx(), SettingsInput{
		ShopName:   "  Sharma Stores  ",
		UpiID:      " Sharma.Stores@OkBank ",
		GstEnabled: true,
		GstNo:      " 22AAAAA0000A1Z5 ",
		BillSeries: 42,
	})
	require.NoError(t, err)

	assert.Equal(t, "Sharma Stores", updated.ShopName)
	assert.Equal(t, "sharma.stores@okbank", updated.UpiID)
	assert.Equal(t, "22AAAAA0000A1Z5", updated.GstNo)
	assert.Equal(t, 42, updated.BillSeries)
	assert.Equal(t, updated, settings.Get(testCtx()))
}

func TestUpdateSettingsBillSeries(t *testing.T) {
	state := newTestState()
	settings := NewSettingsService(state)

	_, err := settings.Update(testCtx(), SettingsInput{BillSeries: 0})
	require.Error(t, err)
	assert.Equal(t, "Bill series must be a positive number", err.Error())
}

func TestUpdateSettingsInvalidUpi(t *testing.T) {
	state := newTestState()
	settings := NewSettingsService(state)

	_, err := settings.Update(testCtx(), SettingsInput{UpiID: "not a handle", BillSeries: 1})
	require.Error(t, err)
	assert.Equal(t, "Invalid UPI ID", err.Error())

	// Empty handle is allowed; the URI builder falls back to the default.
	_, err = settings.Update(testCtx(), SettingsInput{UpiID: "", BillSeries: 1})
	assert.NoError(t, err)
}
