package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/repository"
)

type documentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository returns a Postgres-backed implementation of DocumentRepository.
func NewDocumentRepository(pool *pgxpool.Pool) repository.DocumentRepository {
	return &documentRepository{pool: pool}
}

const documentColumns = `id, user_id, business_profile_id, file_name, file_type, file_size,
	storage_path, download_url, category, expiry_date, uploaded_at, updated_at`

func (r *documentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	const query = `
	SELECT ` + documentColumns + `
	FROM documents
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanDocument(row)
}

func (r *documentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Document, error) {
	const query = `
	SELECT ` + documentColumns + `
	FROM documents
	WHERE user_id = $1
	ORDER BY uploaded_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

func (r *documentRepository) ListByCategory(ctx context.Context, userID, category string) ([]domain.Document, error) {
	const query = `
	SELECT ` + documentColumns + `
	FROM documents
	WHERE user_id = $1 AND category = $2
	ORDER BY uploaded_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

func (r *documentRepository) ListExpiring(ctx context.Context, userID string, before time.Time) ([]domain.Document, error) {
	const query = `
	SELECT ` + documentColumns + `
	FROM documents
	WHERE user_id = $1 AND expiry_date IS NOT NULL AND expiry_date <= $2
	ORDER BY expiry_date ASC
	`
	rows, err := r.pool.Query(ctx, query, userID, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

func (r *documentRepository) ListAll(ctx context.Context) ([]domain.Document, error) {
	const query = `
	SELECT ` + documentColumns + `
	FROM documents
	ORDER BY uploaded_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if doc == nil {
		return nil, domain.ErrInvalidPayload
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO documents (id, user_id, business_profile_id, file_name, file_type, file_size,
		storage_path, download_url, category, expiry_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING uploaded_at, updated_at
	`

	var expiry interface{}
	if doc.HasExpiry() {
		expiry = *doc.ExpiryDate
	}

	if err := r.pool.QueryRow(ctx, query,
		doc.ID,
		doc.UserID,
		doc.BusinessProfileID,
		doc.FileName,
		doc.FileType,
		doc.FileSize,
		doc.StoragePath,
		doc.DownloadURL,
		doc.Category,
		expiry,
	).Scan(&doc.UploadedAt, &doc.UpdatedAt); err != nil {
		return nil, err
	}

	return doc, nil
}

func (r *documentRepository) Update(ctx context.Context, id string, update repository.DocumentUpdate) error {
	const query = `
	UPDATE documents
	SET category = COALESCE(NULLIF($2, ''), category),
		expiry_date = COALESCE($3, expiry_date),
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	var expiry interface{}
	if update.ExpiryDate != nil {
		expiry = *update.ExpiryDate
	}

	var updatedAt time.Time
	if err := r.pool.QueryRow(ctx, query, id, update.Category, expiry).Scan(&updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDocumentNotFound
		}
		return err
	}
	return nil
}

func (r *documentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM documents WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func collectDocuments(rows pgx.Rows) ([]domain.Document, error) {
	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

func scanDocument(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Document, error) {
	var doc domain.Document
	var expiry *time.Time

	if err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.BusinessProfileID,
		&doc.FileName,
		&doc.FileType,
		&doc.FileSize,
		&doc.StoragePath,
		&doc.DownloadURL,
		&doc.Category,
		&expiry,
		&doc.UploadedAt,
		&doc.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}

	doc.ExpiryDate = expiry
	return &doc, nil
}
