package prep

import (
	"context"
	"errors"
	"time"

	"github.com/SirCoffee1429/prep-pal-sub000/internal/parlevel"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/station"

	"github.com/google/uuid"
)

const salesWindowDays = 7

// ParSource provides the par levels for a weekday.
type ParSource interface {
	ListForDay(ctx context.Context, dayOfWeek int) ([]parlevel.ItemParLevel, error)
}

// SalesSource provides trailing sales averages.
type SalesSource interface {
	TrailingDailyAverage(ctx context.Context, menuItemID string, end time.Time, days int) (float64, error)
}

type Service struct {
	repo  Repository
	pars  ParSource
	sales SalesSource
}

func NewService(repo Repository, pars ParSource, sales SalesSource) *Service {
	return &Service{repo: repo, pars: pars, sales: sales}
}

// Generate builds (or regenerates) the prep list for a date.
//
// For each par level on that weekday the suggested prep quantity is
// par − on-hand, bumped up to the trailing 7-day average daily sales when
// recent demand outruns the par. Items that need nothing are left off the
// list. On-hand counts default to zero when not supplied.
func (s *Service) Generate(
	ctx context.Context,
	date time.Time,
	onHand map[string]float64,
	generatedBy string,
) (*List, error) {

	if date.IsZero() {
		return nil, errors.New("date is required")
	}

	pars, err := s.pars.ListForDay(ctx, int(date.Weekday()))
	if err != nil {
		return nil, err
	}

	list := &List{
		ID:       uuid.New().String(),
		PrepDate: date,
	}
	if generatedBy != "" {
		list.GeneratedBy = &generatedBy
	}

	for _, par := range pars {
		target := par.Quantity

		avg, err := s.sales.TrailingDailyAverage(ctx, par.MenuItemID, date, salesWindowDays)
		if err == nil && avg > target {
			target = avg
		}

		needed := target - onHand[par.MenuItemID]
		if needed <= 0 {
			continue
		}

		list.Items = append(list.Items, Item{
			MenuItemID: par.MenuItemID,
			ItemName:   par.ItemName,
			Station:    station.Infer(par.ItemName),
			Quantity:   needed,
		})
	}

	if err := s.repo.Replace(ctx, list); err != nil {
		return nil, err
	}

	return list, nil
}

func (s *Service) GetByDate(ctx context.Context, date time.Time) (*List, error) {
	return s.repo.GetByDate(ctx, date)
}

func (s *Service) SetItemCompleted(ctx context.Context, itemID int, completed bool) error {
	return s.repo.SetItemCompleted(ctx, itemID, completed)
}
