package docs

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Insert records a freshly uploaded document in UPLOADED state.
func (r *Repository) Insert(ctx context.Context, batchID string, uploadedBy *string, objectKey, filename string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO document_uploads (batch_id, uploaded_by, object_key, original_filename, status)
		VALUES ($1, $2, $3, $4, 'UPLOADED')
		RETURNING id
	`, batchID, uploadedBy, objectKey, filename).Scan(&id)

	return id, err
}

// FetchPending retrieves and CLAIMS the next document pending extraction.
// Returns (0, "", nil) when no jobs are available (NOT an error).
func (r *Repository) FetchPending(ctx context.Context) (int, string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, "", err
	}
	defer tx.Rollback(ctx)

	var id int
	var objectKey string

	err = tx.QueryRow(ctx, `
		SELECT id, object_key
		FROM document_uploads
		WHERE status = 'UPLOADED'
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`).Scan(&id, &objectKey)

	// No pending jobs is NOT an error
	if err != nil {
		return 0, "", nil
	}

	// Mark as extracting immediately (atomic claim)
	_, err = tx.Exec(ctx, `
		UPDATE document_uploads
		SET status = 'EXTRACTING', updated_at = now()
		WHERE id = $1
	`, id)
	if err != nil {
		return 0, "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, "", err
	}

	return id, objectKey, nil
}

// SaveExtracted stores the extraction result and moves the document to
// EXTRACTED in one statement.
func (r *Repository) SaveExtracted(ctx context.Context, id int, docType, rawText string, parsed json.RawMessage) error {
	_, err := r.db.Exec(ctx, `
		UPDATE document_uploads
		SET status = 'EXTRACTED',
		    doc_type = $1,
		    raw_text = $2,
		    parsed_data = $3,
		    failure_reason = NULL,
		    updated_at = now()
		WHERE id = $4
	`, docType, rawText, parsed, id)

	return err
}

// MarkFailed records the failure reason so operators can see why a
// document never produced an import preview.
func (r *Repository) MarkFailed(ctx context.Context, id int, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE document_uploads
		SET status = 'FAILED',
		    failure_reason = $1,
		    updated_at = now()
		WHERE id = $2
	`, reason, id)

	return err
}

// MarkImported closes out a document whose rows have been committed.
func (r *Repository) MarkImported(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE document_uploads
		SET status = 'IMPORTED',
		    updated_at = now()
		WHERE id = $1
	`, id)

	return err
}

// Retry requeues a FAILED document. Only failed documents are eligible;
// returns false when the row was not in a retryable state.
func (r *Repository) Retry(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE document_uploads
		SET status = 'UPLOADED',
		    failure_reason = NULL,
		    updated_at = now()
		WHERE id = $1 AND status = 'FAILED'
	`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

// GetByID returns the full upload row, parsed payload included.
func (r *Repository) GetByID(ctx context.Context, id int) (*Upload, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, batch_id, uploaded_by, object_key, original_filename,
		       status, doc_type, raw_text, parsed_data, failure_reason,
		       created_at, updated_at
		FROM document_uploads
		WHERE id = $1
	`, id)

	var u Upload
	err := row.Scan(
		&u.ID, &u.BatchID, &u.UploadedBy, &u.ObjectKey, &u.Filename,
		&u.Status, &u.DocType, &u.RawText, &u.ParsedData, &u.FailureReason,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// ListBatch returns every upload in a batch, oldest first.
func (r *Repository) ListBatch(ctx context.Context, batchID string) ([]Upload, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, batch_id, uploaded_by, object_key, original_filename,
		       status, doc_type, raw_text, parsed_data, failure_reason,
		       created_at, updated_at
		FROM document_uploads
		WHERE batch_id = $1
		ORDER BY created_at, id
	`, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []Upload
	for rows.Next() {
		var u Upload
		if err := rows.Scan(
			&u.ID, &u.BatchID, &u.UploadedBy, &u.ObjectKey, &u.Filename,
			&u.Status, &u.DocType, &u.RawText, &u.ParsedData, &u.FailureReason,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}

	return uploads, rows.Err()
}
