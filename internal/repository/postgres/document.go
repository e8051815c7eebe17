package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kiema2001/prof-mbinda-backend/internal/db"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

var _ model.DocumentStore = (*DocumentRepository)(nil)

type DocumentRepository struct {
	db *db.DB
}

func NewDocumentRepository(db *db.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) List(ctx context.Context) ([]model.Document, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, file_path, file_size, file_type, created_at
		FROM documents
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	documents := []model.Document{}
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(
			&d.ID, &d.Title, &d.Description, &d.FilePath, &d.FileSize, &d.FileType, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, d)
	}

	return documents, rows.Err()
}

func (r *DocumentRepository) Get(ctx context.Context, id string) (model.Document, error) {
	var d model.Document
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, file_path, file_size, file_type, created_at
		FROM documents
		WHERE id = $1
	`, id).Scan(&d.ID, &d.Title, &d.Description, &d.FilePath, &d.FileSize, &d.FileType, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Document{}, model.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("failed to get document: %w", err)
	}

	return d, nil
}

func (r *DocumentRepository) Create(ctx context.Context, d model.Document) (model.Document, error) {
	var saved model.Document
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO documents (title, description, file_path, file_size, file_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, file_path, file_size, file_type, created_at
	`, d.Title, d.Description, d.FilePath, d.FileSize, d.FileType).Scan(
		&saved.ID, &saved.Title, &saved.Description, &saved.FilePath,
		&saved.FileSize, &saved.FileType, &saved.CreatedAt,
	)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	return saved, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
