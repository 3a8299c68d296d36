package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("menu item not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, name, category, station, price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	`, item.ID, item.Name, item.Category, item.Station, item.Price, item.Active)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, item *Item) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $1,
		    category = $2,
		    station = $3,
		    price = $4,
		    active = $5,
		    updated_at = now()
		WHERE id = $6
	`, item.Name, item.Category, item.Station, item.Price, item.Active, item.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	// Soft delete: imported history still references the item
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET active = FALSE, updated_at = now()
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	item := &Item{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, category, station, price, active, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`, id).Scan(
		&item.ID, &item.Name, &item.Category, &item.Station,
		&item.Price, &item.Active, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]Item, error) {
	return r.list(ctx, `
		SELECT id, name, category, station, price, active, created_at, updated_at
		FROM menu_items
		WHERE active = TRUE
		ORDER BY name
	`)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Item, error) {
	return r.list(ctx, `
		SELECT id, name, category, station, price, active, created_at, updated_at
		FROM menu_items
		ORDER BY name
	`)
}

func (r *PostgresRepository) list(ctx context.Context, query string) ([]Item, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Category, &item.Station,
			&item.Price, &item.Active, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
