package parlevel

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, par *ParLevel) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO par_levels (menu_item_id, day_of_week, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (menu_item_id, day_of_week)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()
	`, par.MenuItemID, par.DayOfWeek, par.Quantity)
	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]ItemParLevel, error) {
	return r.list(ctx, `
		SELECT p.menu_item_id, p.day_of_week, p.quantity, m.name
		FROM par_levels p
		JOIN menu_items m ON m.id = p.menu_item_id
		ORDER BY m.name, p.day_of_week
	`)
}

func (r *PostgresRepository) ListForDay(ctx context.Context, dayOfWeek int) ([]ItemParLevel, error) {
	return r.list(ctx, `
		SELECT p.menu_item_id, p.day_of_week, p.quantity, m.name
		FROM par_levels p
		JOIN menu_items m ON m.id = p.menu_item_id
		WHERE p.day_of_week = $1 AND m.active = TRUE
		ORDER BY m.name
	`, dayOfWeek)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]ItemParLevel, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pars []ItemParLevel
	for rows.Next() {
		var par ItemParLevel
		if err := rows.Scan(&par.MenuItemID, &par.DayOfWeek, &par.Quantity, &par.ItemName); err != nil {
			return nil, err
		}
		pars = append(pars, par)
	}
	return pars, rows.Err()
}
