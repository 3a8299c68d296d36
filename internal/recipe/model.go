package recipe

import "time"

// Ingredient is one line of a recipe card.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is a prep recipe card, optionally linked to the menu item it
// produces.
type Recipe struct {
	ID          string       `json:"id"`
	MenuItemID  *string      `json:"menu_item_id,omitempty"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
	Method      string       `json:"method"`
	Yield       string       `json:"yield"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
