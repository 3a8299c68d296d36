package parlevel

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpsertMany writes a batch of par levels, continuing past per-row failures
// and reporting how many were written.
func (s *Service) UpsertMany(ctx context.Context, pars []ParLevel) (int, error) {
	written := 0
	var firstErr error

	for i := range pars {
		if pars[i].DayOfWeek < 0 || pars[i].DayOfWeek > 6 {
			if firstErr == nil {
				firstErr = errors.New("day_of_week must be 0-6")
			}
			continue
		}
		if pars[i].MenuItemID == "" {
			if firstErr == nil {
				firstErr = errors.New("menu_item_id is required")
			}
			continue
		}
		if err := s.repo.Upsert(ctx, &pars[i]); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		written++
	}

	return written, firstErr
}

func (s *Service) List(ctx context.Context) ([]ItemParLevel, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListForDay(ctx context.Context, dayOfWeek int) ([]ItemParLevel, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, errors.New("day_of_week must be 0-6")
	}
	return s.repo.ListForDay(ctx, dayOfWeek)
}
