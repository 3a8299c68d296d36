package parlevel

// ParLevel is the target on-hand quantity of a menu item for one day of the
// week (0 = Sunday … 6 = Saturday, matching time.Weekday).
type ParLevel struct {
	MenuItemID string  `json:"menu_item_id"`
	DayOfWeek  int     `json:"day_of_week"`
	Quantity   float64 `json:"quantity"`
}

// ItemParLevel is a par level joined with its item name for list views.
type ItemParLevel struct {
	ParLevel
	ItemName string `json:"item_name"`
}
