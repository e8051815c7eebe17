package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kiema2001/prof-mbinda-backend/internal/db"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

var _ model.PublicationStore = (*PublicationRepository)(nil)

type PublicationRepository struct {
	db *db.DB
}

func NewPublicationRepository(db *db.DB) *PublicationRepository {
	return &PublicationRepository{db: db}
}

func (r *PublicationRepository) List(ctx context.Context) ([]model.Publication, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, details, year, link, document_path, created_at
		FROM publications
		ORDER BY year DESC, title
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}
	defer rows.Close()

	pubs := []model.Publication{}
	for rows.Next() {
		var p model.Publication
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Details, &p.Year, &p.Link, &p.DocumentPath, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan publication: %w", err)
		}
		pubs = append(pubs, p)
	}

	return pubs, rows.Err()
}

func (r *PublicationRepository) Get(ctx context.Context, id string) (model.Publication, error) {
	var p model.Publication
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, details, year, link, document_path, created_at
		FROM publications
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Details, &p.Year, &p.Link, &p.DocumentPath, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Publication{}, model.ErrNotFound
		}
		return model.Publication{}, fmt.Errorf("failed to get publication: %w", err)
	}

	return p, nil
}

func (r *PublicationRepository) Create(ctx context.Context, p model.Publication) (model.Publication, error) {
	var saved model.Publication
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO publications (title, details, year, link, document_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, details, year, link, document_path, created_at
	`, p.Title, p.Details, p.Year, p.Link, p.DocumentPath).Scan(
		&saved.ID, &saved.Title, &saved.Details, &saved.Year,
		&saved.Link, &saved.DocumentPath, &saved.CreatedAt,
	)
	if err != nil {
		return model.Publication{}, fmt.Errorf("failed to create publication: %w", err)
	}

	return saved, nil
}

func (r *PublicationRepository) Update(ctx context.Context, p model.Publication) (model.Publication, error) {
	var saved model.Publication
	err := r.db.QueryRowContext(ctx, `
		UPDATE publications
		SET title = $2, details = $3, year = $4, link = $5, document_path = $6
		WHERE id = $1
		RETURNING id, title, details, year, link, document_path, created_at
	`, p.ID, p.Title, p.Details, p.Year, p.Link, p.DocumentPath).Scan(
		&saved.ID, &saved.Title, &saved.Details, &saved.Year,
		&saved.Link, &saved.DocumentPath, &saved.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Publication{}, model.ErrNotFound
		}
		return model.Publication{}, fmt.Errorf("failed to update publication: %w", err)
	}

	return saved, nil
}

func (r *PublicationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM publications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete publication: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete publication: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
