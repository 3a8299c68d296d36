package prep

import (
	"context"
	"time"
)

// Repository defines all database operations for prep lists
type Repository interface {
	// Replace atomically swaps the prep list for a date with a new one.
	// Regenerating for the same date overwrites the previous list.
	Replace(ctx context.Context, list *List) error

	GetByDate(ctx context.Context, date time.Time) (*List, error)
	SetItemCompleted(ctx context.Context, itemID int, completed bool) error
}
