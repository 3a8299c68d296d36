package prep

import "time"

// List is one day's prep list.
type List struct {
	ID          string    `json:"id"`
	PrepDate    time.Time `json:"prep_date"`
	GeneratedBy *string   `json:"generated_by,omitempty"`
	Items       []Item    `json:"items"`
	CreatedAt   time.Time `json:"created_at"`
}

// Item is one line of a prep list, assigned to a station.
type Item struct {
	ID         int     `json:"id"`
	PrepListID string  `json:"prep_list_id"`
	MenuItemID string  `json:"menu_item_id"`
	ItemName   string  `json:"item_name,omitempty"`
	Station    string  `json:"station"`
	Quantity   float64 `json:"quantity"`
	Completed  bool    `json:"completed"`
}
