package entity

import (
	"time"

	"github.com/brightbreeze/billing-api/internal/domain/enum"
	"github.com/google/uuid"
)

// LineItem is a priced, tax-computed line as recorded on a sale. All three
// money fields are individually rounded to 2 decimal places.
type LineItem struct {
	ItemID       uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	GstRate      float64   `json:"gstRate"`
	LineSubtotal float64   `json:"lineSubtotal"`
	GstAmount    float64   `json:"gstAmount"`
	LineTotal    float64   `json:"lineTotal"`
}

// Totals aggregates a set of line items.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// SaleRecord is an append-only ledger entry. Once recorded it is immutable
// except for Status, which a soft delete flips to SaleStatusDeleted.
type SaleRecord struct {
	ID         uuid.UUID       `json:"id"`
	BillNumber string          `json:"billNumber"`
	Timestamp  time.Time       `json:"timestamp"`
	Items      []LineItem      `json:"items"`
	Subtotal   float64         `json:"subtotal"`
	Tax        float64         `json:"tax"`
	Total      float64         `json:"total"`
	GstEnabled bool            `json:"gstEnabled"`
	Customer   Customer        `json:"customer"`
	Status     enum.SaleStatus `json:"status"`
}
