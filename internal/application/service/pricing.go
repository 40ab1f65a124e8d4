package service

import (
	"strings"

	"github.com/brightbreeze/billing-api/internal/domain/entity"
	"github.com/brightbreeze/billing-api/pkg/money"
	"github.com/google/uuid"
)

// BuildLineItem prices a single (item, quantity, rate) line. The GST rate is
// sanitized and zeroed when GST is globally disabled; subtotal, tax and total
// are each rounded to 2 decimal places. Returns nil for quantity <= 0 so
// empty lines are filtered rather than recorded as zero lines.
func BuildLineItem(itemID uuid.UUID, name, brand string, unitPrice float64, quantity int, gstRate float64, gstEnabled bool) *entity.LineItem {
	if quantity <= 0 {
		return nil
	}

	appliedRate := money.SanitizeGstRate(gstRate)
	if !gstEnabled {
		appliedRate = 0
	}

	lineSubtotal := unitPrice * float64(quantity)
	gstAmount := lineSubtotal * appliedRate / 100

	return &entity.LineItem{
		ItemID:       itemID,
		Name:         name,
		Brand:        strings.TrimSpace(brand),
		Quantity:     quantity,
		Price:        unitPrice,
		GstRate:      appliedRate,
		LineSubtotal: money.RoundCurrency(lineSubtotal),
		GstAmount:    money.RoundCurrency(gstAmount),
		LineTotal:    money.RoundCurrency(lineSubtotal + gstAmount),
	}
}

// TotalsFromLineItems aggregates priced lines in a single reduction and
// rounds once at the aggregate level. The lines are already rounded, so the
// final rounding is idempotent over them.
func TotalsFromLineItems(lineItems []entity.LineItem) entity.Totals {
	var subtotal, tax, total float64
	for _, item := range lineItems {
		subtotal += item.LineSubtotal
		tax += item.GstAmount
		total += item.LineTotal
	}
	return entity.Totals{
		Subtotal: money.RoundCurrency(subtotal),
		Tax:      money.RoundCurrency(tax),
		Total:    money.RoundCurrency(total),
	}
}
