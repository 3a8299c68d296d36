package menu

import "context"

// Repository defines all database operations for menu items
type Repository interface {
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Item, error)

	// ListActive returns active items ordered by name — this ordering is
	// what makes fuzzy tie-breaks deterministic downstream.
	ListActive(ctx context.Context) ([]Item, error)
	ListAll(ctx context.Context) ([]Item, error)
}
