package service

import (
	"testing"

	"github.com/brightbreeze/billing-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLineItem(t *testing.T) {
	id := uuid.New()
	line := BuildLineItem(id, "Tea", " Chai Co ", 100, 2, 12, true)
	require.NotNil(t, line)

	assert.Equal(t, id, line.ItemID)
	assert.Equal(t, "Chai Co", line.Brand)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 200.0, line.LineSubtotal)
	assert.Equal(t, 24.0, line.GstAmount)
	assert.Equal(t, 224.0, line.LineTotal)
}

func TestBuildLineItemGstDisabled(t *testing.T) {
	line := BuildLineItem(uuid.New(), "Tea", "", 100, 2, 12, false)
	require.NotNil(t, line)

	assert.Equal(t, 0.0, line.GstRate)
	assert.Equal(t, 200.0, line.LineSubtotal)
	assert.Equal(t, 0.0, line.GstAmount)
	assert.Equal(t, 200.0, line.LineTotal)
}

func TestBuildLineItemInvalidRate(t *testing.T) {
	line := BuildLineItem(uuid.New(), "Tea", "", 100, 1, -7, true)
	require.NotNil(t, line)
	assert.Equal(t, 0.0, line.GstRate)
	assert.Equal(t, 0.0, line.GstAmount)
}

func TestBuildLineItemZeroQuantity(t *testing.T) {
	assert.Nil(t, BuildLineItem(uuid.New(), "Tea", "", 100, 0, 12, true))
	assert.Nil(t, BuildLineItem(uuid.New(), "Tea", "", 100, -3, 12, true))
}

func TestBuildLineItemRounding(t *testing.T) {
	// 3 x 33.33 @ 18% = 99.99 subtotal, 17.9982 tax
	line := BuildLineItem(uuid.New(), "Widget", "", 33.33, 3, 18, true)
	require.NotNil(t, line)
	assert.Equal(t, 99.99, line.LineSubtotal)
	assert.Equal(t, 18.0, line.GstAmount)
	assert.Equal(t, 117.99, line.LineTotal)
}

func TestTotalsFromLineItems(t *testing.T) {
	lines := []entity.LineItem{
		{LineSubtotal: 200, GstAmount: 24, LineTotal: 224},
		{LineSubtotal: 99.99, GstAmount: 18, LineTotal: 117.99},
	}
	totals := TotalsFromLineItems(lines)

	assert.Equal(t, 299.99, totals.Subtotal)
	assert.Equal(t, 42.0, totals.Tax)
	assert.Equal(t, 341.99, totals.Total)
}

func TestTotalsFromLineItemsEmpty(t *testing.T) {
	totals := TotalsFromLineItems(nil)
	assert.Equal(t, entity.Totals{}, totals)
}
