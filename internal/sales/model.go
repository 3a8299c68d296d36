package sales

import "time"

// Record is one ingested sales-report line resolved to a menu item.
type Record struct {
	ID         int       `json:"id"`
	MenuItemID string    `json:"menu_item_id"`
	SaleDate   time.Time `json:"sale_date"`
	Quantity   float64   `json:"quantity"`
	Gross      float64   `json:"gross"`
}

// ItemSummary aggregates sales for one menu item over a date range.
type ItemSummary struct {
	MenuItemID    string  `json:"menu_item_id"`
	ItemName      string  `json:"item_name"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalGross    float64 `json:"total_gross"`
}
