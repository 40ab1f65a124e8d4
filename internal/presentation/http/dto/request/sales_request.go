package request

// SalesFilterRequest represents sales listing filter parameters
type SalesFilterRequest struct {
	From       string `form:"from"`
	To         string `form:"to"`
	Customer   string `form:"customer"`
	Query      string `form:"q"`
	CategoryID string `form:"category_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
