package sales

import (
	"context"
	"time"
)

// Repository defines all database operations for sales data
type Repository interface {
	Insert(ctx context.Context, rec *Record) error
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Record, error)
	Summarize(ctx context.Context, from, to time.Time) ([]ItemSummary, error)

	// TrailingDailyAverage returns the average daily quantity sold for an
	// item over the trailing window ending at the given date.
	TrailingDailyAverage(ctx context.Context, menuItemID string, end time.Time, days int) (float64, error)
}
