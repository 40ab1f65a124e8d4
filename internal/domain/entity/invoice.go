package entity

import "time"

// InvoiceModel is a presentation-agnostic projection of a priced line-item
// set plus shop and bill metadata, built fresh for preview and for ledger
// playback. It is derived data and is never persisted.
type InvoiceModel struct {
	ShopName    string     `json:"shopName"`
	ShopTagline string     `json:"shopTagline"`
	ShopAddress string     `json:"shopAddress"`
	ShopContact string     `json:"shopContact"`
	GstNo       string     `json:"gstNo"`
	GstEnabled  bool       `json:"gstEnabled"`
	Items       []LineItem `json:"items"`
	Totals      Totals     `json:"totals"`
	Timestamp   time.Time  `json:"timestamp"`
	BillNumber  string     `json:"billNumber,omitempty"`
	Customer    Customer   `json:"customer"`
	UpiURI      string     `json:"upiUri,omitempty"`
}
