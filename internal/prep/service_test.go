package prep

import (
	"context"
	"testing"
	"time"

	"github.com/SirCoffee1429/prep-pal-sub000/internal/parlevel"
)

type fakeParSource struct {
	pars []parlevel.ItemParLevel
}

func (f *fakeParSource) ListForDay(ctx context.Context, dayOfWeek int) ([]parlevel.ItemParLevel, error) {
	return f.pars, nil
}

type fakeSalesSource struct {
	averages map[string]float64
}

func (f *fakeSalesSource) TrailingDailyAverage(ctx context.Context, menuItemID string, end time.Time, days int) (float64, error) {
	return f.averages[menuItemID], nil
}

type fakeRepo struct {
	replaced *List
}

func (f *fakeRepo) Replace(ctx context.Context, list *List) error {
	f.replaced = list
	return nil
}

func (f *fakeRepo) GetByDate(ctx context.Context, date time.Time) (*List, error) {
	if f.replaced == nil {
		return nil, ErrNotFound
	}
	return f.replaced, nil
}

func (f *fakeRepo) SetItemCompleted(ctx context.Context, itemID int, completed bool) error {
	return nil
}

func par(id, name string, qty float64) parlevel.ItemParLevel {
	return parlevel.ItemParLevel{
		ParLevel: parlevel.ParLevel{MenuItemID: id, DayOfWeek: 1, Quantity: qty},
		ItemName: name,
	}
}

func TestGenerateSubtractsOnHand(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(
		repo,
		&fakeParSource{pars: []parlevel.ItemParLevel{par("item-1", "Ribeye Steak", 12)}},
		&fakeSalesSource{averages: map[string]float64{}},
	)

	list, err := service.Generate(context.Background(), time.Now(), map[string]float64{"item-1": 4}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(list.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(list.Items))
	}
	if list.Items[0].Quantity != 8 {
		t.Fatalf("expected quantity 8, got %v", list.Items[0].Quantity)
	}
	if list.Items[0].Station != "grill" {
		t.Fatalf("expected grill station, got %s", list.Items[0].Station)
	}
}

func TestGenerateBumpsToSalesAverage(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(
		repo,
		&fakeParSource{pars: []parlevel.ItemParLevel{par("item-1", "Caesar Salad", 10)}},
		&fakeSalesSource{averages: map[string]float64{"item-1": 15}},
	)

	list, err := service.Generate(context.Background(), time.Now(), nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if list.Items[0].Quantity != 15 {
		t.Fatalf("expected demand-adjusted quantity 15, got %v", list.Items[0].Quantity)
	}
}

func TestGenerateSkipsFullyStockedItems(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(
		repo,
		&fakeParSource{pars: []parlevel.ItemParLevel{par("item-1", "Fish Tacos", 6)}},
		&fakeSalesSource{averages: map[string]float64{}},
	)

	list, err := service.Generate(context.Background(), time.Now(), map[string]float64{"item-1": 6}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(list.Items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(list.Items))
	}
	if repo.replaced == nil {
		t.Fatal("expected list to be persisted even when empty")
	}
}
