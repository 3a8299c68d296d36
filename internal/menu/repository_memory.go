package menu

import (
	"context"
	"sort"
)

// InMemoryRepository backs handler and importer tests.
type InMemoryRepository struct {
	items map[string]*Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]*Item)}
}

func (r *InMemoryRepository) Create(ctx context.Context, item *Item) error {
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, item *Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return ErrNotFound
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	item, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	item.Active = false
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *InMemoryRepository) ListActive(ctx context.Context) ([]Item, error) {
	items, _ := r.ListAll(ctx)
	var active []Item
	for _, item := range items {
		if item.Active {
			active = append(active, item)
		}
	}
	return active, nil
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]Item, error) {
	var items []Item
	for _, item := range r.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}
