package parlevel

import "context"

// Repository defines all database operations for par levels
type Repository interface {
	// Upsert replaces the quantity for (menu_item_id, day_of_week).
	Upsert(ctx context.Context, par *ParLevel) error

	List(ctx context.Context) ([]ItemParLevel, error)
	ListForDay(ctx context.Context, dayOfWeek int) ([]ItemParLevel, error)
}
