package recipe

import "context"

// Repository defines all database operations for recipes
type Repository interface {
	Create(ctx context.Context, r *Recipe) error
	Update(ctx context.Context, r *Recipe) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Recipe, error)
	List(ctx context.Context) ([]Recipe, error)
}
