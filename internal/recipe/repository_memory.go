package recipe

import (
	"context"
	"sort"
)

type InMemoryRepository struct {
	recipes map[string]*Recipe
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{recipes: make(map[string]*Recipe)}
}

func (r *InMemoryRepository) Create(ctx context.Context, rec *Recipe) error {
	copied := *rec
	r.recipes[rec.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, rec *Recipe) error {
	if _, ok := r.recipes[rec.ID]; !ok {
		return ErrNotFound
	}
	copied := *rec
	r.recipes[rec.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.recipes[id]; !ok {
		return ErrNotFound
	}
	delete(r.recipes, id)
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Recipe, error) {
	var recipes []Recipe
	for _, rec := range r.recipes {
		recipes = append(recipes, *rec)
	}
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].Name < recipes[j].Name })
	return recipes, nil
}
