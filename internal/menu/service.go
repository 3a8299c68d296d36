package menu

import (
	"context"
	"errors"

	"github.com/SirCoffee1429/prep-pal-sub000/internal/matching"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/station"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, item *Item) (*Item, error) {
	if item.Name == "" {
		return nil, errors.New("name is required")
	}

	item.ID = uuid.New().String()
	item.Active = true
	if item.Station == "" {
		item.Station = station.Infer(item.Name)
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, item *Item) error {
	if item.ID == "" || item.Name == "" {
		return errors.New("id and name are required")
	}
	if item.Station == "" {
		item.Station = station.Infer(item.Name)
	}
	return s.repo.Update(ctx, item)
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, includeInactive bool) ([]Item, error) {
	if includeInactive {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListActive(ctx)
}

// --------------------------------------------------
// Catalog for the matching engine
// --------------------------------------------------

// Catalog returns the active items as resolver catalog entries ordered by
// name. Iteration order decides fuzzy tie-breaks, so keep it stable.
func (s *Service) Catalog(ctx context.Context) ([]matching.CatalogEntry, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]matching.CatalogEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, matching.CatalogEntry{ID: item.ID, Name: item.Name})
	}
	return entries, nil
}
