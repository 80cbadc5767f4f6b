package entities

// Package is an internet service plan. Price is whole Kenyan shillings per
// month.
type Package struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Speed         string `json:"speed"`
	Price         int64  `json:"price"`
	Description   string `json:"description"`
	IsActive      bool   `json:"is_active"`
	CustomerCount int    `json:"customer_count"`
}
