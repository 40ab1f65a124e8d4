package request

// SettingsRequest represents a full settings update
type SettingsRequest struct {
	ShopName    string `json:"shop_name" binding:"omitempty,max=255"`
	ShopTagline string `json:"shop_tagline" binding:"omitempty,max=255"`
	ShopAddress string `json:"shop_address" binding:"omitempty,max=1000"`
	ShopContact string `json:"shop_contact" binding:"omitempty,max=255"`
	UpiID       string `json:"upi_id" binding:"omitempty,max=255"`
	GstEnabled  bool   `json:"gst_enabled"`
	GstNo       string `json:"gst_no" binding:"omitempty,max=64"`
	BillSeries  int    `json:"bill_series" binding:"required,min=1"`
}
