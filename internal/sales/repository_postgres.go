package sales

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, rec *Record) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO sales_data (menu_item_id, sale_date, quantity, gross)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, rec.MenuItemID, rec.SaleDate, rec.Quantity, rec.Gross).Scan(&rec.ID)
}

func (r *PostgresRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, menu_item_id, sale_date, quantity, gross
		FROM sales_data
		WHERE sale_date BETWEEN $1 AND $2
		ORDER BY sale_date, id
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.MenuItemID, &rec.SaleDate, &rec.Quantity, &rec.Gross); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresRepository) Summarize(ctx context.Context, from, to time.Time) ([]ItemSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.menu_item_id, m.name,
		       COALESCE(SUM(s.quantity), 0),
		       COALESCE(SUM(s.gross), 0)
		FROM sales_data s
		JOIN menu_items m ON m.id = s.menu_item_id
		WHERE s.sale_date BETWEEN $1 AND $2
		GROUP BY s.menu_item_id, m.name
		ORDER BY SUM(s.gross) DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []ItemSummary
	for rows.Next() {
		var sum ItemSummary
		if err := rows.Scan(&sum.MenuItemID, &sum.ItemName, &sum.TotalQuantity, &sum.TotalGross); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

func (r *PostgresRepository) TrailingDailyAverage(
	ctx context.Context,
	menuItemID string,
	end time.Time,
	days int,
) (float64, error) {

	var avg float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity), 0) / $3
		FROM sales_data
		WHERE menu_item_id = $1
		  AND sale_date > $2::date - $3 * INTERVAL '1 day'
		  AND sale_date <= $2
	`, menuItemID, end, days).Scan(&avg)

	return avg, err
}
