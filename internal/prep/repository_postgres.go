package prep

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("prep list not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Replace(ctx context.Context, list *List) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Cascade removes the old list's items
	_, err = tx.Exec(ctx, `
		DELETE FROM prep_lists WHERE prep_date = $1
	`, list.PrepDate)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO prep_lists (id, prep_date, generated_by)
		VALUES ($1, $2, $3)
	`, list.ID, list.PrepDate, list.GeneratedBy)
	if err != nil {
		return err
	}

	for i := range list.Items {
		item := &list.Items[i]
		err = tx.QueryRow(ctx, `
			INSERT INTO prep_list_items (prep_list_id, menu_item_id, station, quantity)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, list.ID, item.MenuItemID, item.Station, item.Quantity).Scan(&item.ID)
		if err != nil {
			return err
		}
		item.PrepListID = list.ID
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) GetByDate(ctx context.Context, date time.Time) (*List, error) {
	list := &List{}
	err := r.db.QueryRow(ctx, `
		SELECT id, prep_date, generated_by, created_at
		FROM prep_lists
		WHERE prep_date = $1
	`, date).Scan(&list.ID, &list.PrepDate, &list.GeneratedBy, &list.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.prep_list_id, i.menu_item_id, m.name, i.station, i.quantity, i.completed
		FROM prep_list_items i
		JOIN menu_items m ON m.id = i.menu_item_id
		WHERE i.prep_list_id = $1
		ORDER BY i.station, m.name
	`, list.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID, &item.PrepListID, &item.MenuItemID, &item.ItemName,
			&item.Station, &item.Quantity, &item.Completed,
		); err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
	return list, rows.Err()
}

func (r *PostgresRepository) SetItemCompleted(ctx context.Context, itemID int, completed bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE prep_list_items SET completed = $1 WHERE id = $2
	`, completed, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
