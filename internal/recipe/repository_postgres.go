package recipe

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("recipe not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *Recipe) error {
	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO recipes (id, menu_item_id, name, ingredients, method, yield, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	`, rec.ID, rec.MenuItemID, rec.Name, ingredients, rec.Method, rec.Yield)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, rec *Recipe) error {
	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE recipes
		SET menu_item_id = $1,
		    name = $2,
		    ingredients = $3,
		    method = $4,
		    yield = $5,
		    updated_at = now()
		WHERE id = $6
	`, rec.MenuItemID, rec.Name, ingredients, rec.Method, rec.Yield, rec.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Recipe, error) {
	rec := &Recipe{}
	var ingredients []byte

	err := r.db.QueryRow(ctx, `
		SELECT id, menu_item_id, name, ingredients, method, yield, created_at, updated_at
		FROM recipes
		WHERE id = $1
	`, id).Scan(
		&rec.ID, &rec.MenuItemID, &rec.Name, &ingredients,
		&rec.Method, &rec.Yield, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(ingredients, &rec.Ingredients); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Recipe, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, menu_item_id, name, ingredients, method, yield, created_at, updated_at
		FROM recipes
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		var rec Recipe
		var ingredients []byte
		if err := rows.Scan(
			&rec.ID, &rec.MenuItemID, &rec.Name, &ingredients,
			&rec.Method, &rec.Yield, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(ingredients, &rec.Ingredients); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}
