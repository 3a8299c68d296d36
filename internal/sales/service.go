package sales

import (
	"context"
	"errors"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Ingest(ctx context.Context, rec *Record) error {
	if rec.MenuItemID == "" {
		return errors.New("menu_item_id is required")
	}
	if rec.SaleDate.IsZero() {
		return errors.New("sale_date is required")
	}
	if rec.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	return s.repo.Insert(ctx, rec)
}

func (s *Service) List(ctx context.Context, from, to time.Time) ([]Record, error) {
	if to.Before(from) {
		return nil, errors.New("to must not precede from")
	}
	return s.repo.ListByDateRange(ctx, from, to)
}

func (s *Service) Summary(ctx context.Context, from, to time.Time) ([]ItemSummary, error) {
	if to.Before(from) {
		return nil, errors.New("to must not precede from")
	}
	return s.repo.Summarize(ctx, from, to)
}

// TrailingDailyAverage feeds prep-list generation.
func (s *Service) TrailingDailyAverage(ctx context.Context, menuItemID string, end time.Time, days int) (float64, error) {
	if days <= 0 {
		days = 7
	}
	return s.repo.TrailingDailyAverage(ctx, menuItemID, end, days)
}
