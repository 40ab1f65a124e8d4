package entity

// Settings is the single mutable shop configuration record. BillSeries is
// the per-shop counter embedded in bill numbers; the ledger increments it
// exactly once per completed sale.
type Settings struct {
	ShopName    string `json:"shopName"`
	ShopTagline string `json:"shopTagline"`
	ShopAddress string `json:"shopAddress"`
	ShopContact string `json:"shopContact"`
	UpiID       string `json:"upiId"`
	GstEnabled  bool   `json:"gstEnabled"`
	GstNo       string `json:"gstNo"`
	BillSeries  int    `json:"billSeries"`
}
