package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		// -------------------------------
		// USERS + ROLES
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id),
			role VARCHAR(50) NOT NULL DEFAULT 'STAFF',
			PRIMARY KEY (user_id, role)
		)`,

		// -------------------------------
		// MENU ITEMS (the catalog)
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL DEFAULT '',
			station VARCHAR(50) NOT NULL DEFAULT 'line',
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// RECIPES
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS recipes (
			id UUID PRIMARY KEY,
			menu_item_id UUID NULL REFERENCES menu_items(id),
			name VARCHAR(255) NOT NULL,
			ingredients JSONB NOT NULL DEFAULT '[]',
			method TEXT NOT NULL DEFAULT '',
			yield VARCHAR(100) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// PAR LEVELS (target stock per weekday)
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS par_levels (
			menu_item_id UUID NOT NULL REFERENCES menu_items(id),
			day_of_week SMALLINT NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
			quantity NUMERIC(10,2) NOT NULL DEFAULT 0,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (menu_item_id, day_of_week)
		)`,

		// -------------------------------
		// SALES DATA
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS sales_data (
			id SERIAL PRIMARY KEY,
			menu_item_id UUID NOT NULL REFERENCES menu_items(id),
			sale_date DATE NOT NULL,
			quantity NUMERIC(10,2) NOT NULL DEFAULT 0,
			gross NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_sales_data_item_date
			ON sales_data (menu_item_id, sale_date)`,

		// -------------------------------
		// PREP LISTS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS prep_lists (
			id UUID PRIMARY KEY,
			prep_date DATE UNIQUE NOT NULL,
			generated_by UUID NULL REFERENCES users(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS prep_list_items (
			id SERIAL PRIMARY KEY,
			prep_list_id UUID NOT NULL REFERENCES prep_lists(id) ON DELETE CASCADE,
			menu_item_id UUID NOT NULL REFERENCES menu_items(id),
			station VARCHAR(50) NOT NULL DEFAULT 'line',
			quantity NUMERIC(10,2) NOT NULL DEFAULT 0,
			completed BOOLEAN NOT NULL DEFAULT FALSE
		)`,

		// -------------------------------
		// DOCUMENT UPLOADS (extraction queue)
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS document_uploads (
			id SERIAL PRIMARY KEY,
			batch_id UUID NOT NULL,
			uploaded_by UUID NULL REFERENCES users(id),
			object_key VARCHAR(500) NOT NULL,
			original_filename VARCHAR(255) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'UPLOADED',
			doc_type VARCHAR(50) NULL,
			raw_text TEXT NULL,
			parsed_data JSONB NULL,
			failure_reason TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_document_uploads_batch
			ON document_uploads (batch_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
