package recipe

import (
	"context"
	"errors"

	"github.com/SirCoffee1429/prep-pal-sub000/internal/matching"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, rec *Recipe) (*Recipe, error) {
	if rec.Name == "" {
		return nil, errors.New("name is required")
	}

	rec.ID = uuid.New().String()
	if rec.Ingredients == nil {
		rec.Ingredients = []Ingredient{}
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Update(ctx context.Context, rec *Recipe) error {
	if rec.ID == "" || rec.Name == "" {
		return errors.New("id and name are required")
	}
	if rec.Ingredients == nil {
		rec.Ingredients = []Ingredient{}
	}
	return s.repo.Update(ctx, rec)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (*Recipe, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Recipe, error) {
	return s.repo.List(ctx)
}

// Catalog returns existing recipes as resolver catalog entries so imported
// recipe cards can be matched against them for de-duplication.
func (s *Service) Catalog(ctx context.Context) ([]matching.CatalogEntry, error) {
	recipes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]matching.CatalogEntry, 0, len(recipes))
	for _, rec := range recipes {
		entries = append(entries, matching.CatalogEntry{ID: rec.ID, Name: rec.Name})
	}
	return entries, nil
}
