package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kiema2001/prof-mbinda-backend/internal/db"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

var _ model.ResearchStore = (*ResearchRepository)(nil)

type ResearchRepository struct {
	db *db.DB
}

func NewResearchRepository(db *db.DB) *ResearchRepository {
	return &ResearchRepository{db: db}
}

func (r *ResearchRepository) List(ctx context.Context) ([]model.ResearchProject, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, document_path, created_at
		FROM research_projects
		ORDER BY title
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list research projects: %w", err)
	}
	defer rows.Close()

	projects := []model.ResearchProject{}
	for rows.Next() {
		var p model.ResearchProject
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.DocumentPath, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan research project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *ResearchRepository) Get(ctx context.Context, id string) (model.ResearchProject, error) {
	var p model.ResearchProject
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, document_path, created_at
		FROM research_projects
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.DocumentPath, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ResearchProject{}, model.ErrNotFound
		}
		return model.ResearchProject{}, fmt.Errorf("failed to get research project: %w", err)
	}

	return p, nil
}

func (r *ResearchRepository) Create(ctx context.Context, p model.ResearchProject) (model.ResearchProject, error) {
	var saved model.ResearchProject
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO research_projects (title, description, document_path)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, document_path, created_at
	`, p.Title, p.Description, p.DocumentPath).Scan(
		&saved.ID, &saved.Title, &saved.Description, &saved.DocumentPath, &saved.CreatedAt,
	)
	if err != nil {
		return model.ResearchProject{}, fmt.Errorf("failed to create research project: %w", err)
	}

	return saved, nil
}

func (r *ResearchRepository) Update(ctx context.Context, p model.ResearchProject) (model.ResearchProject, error) {
	var saved model.ResearchProject
	err := r.db.QueryRowContext(ctx, `
		UPDATE research_projects
		SET title = $2, description = $3, document_path = $4
		WHERE id = $1
		RETURNING id, title, description, document_path, created_at
	`, p.ID, p.Title, p.Description, p.DocumentPath).Scan(
		&saved.ID, &saved.Title, &saved.Description, &saved.DocumentPath, &saved.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ResearchProject{}, model.ErrNotFound
		}
		return model.ResearchProject{}, fmt.Errorf("failed to update research project: %w", err)
	}

	return saved, nil
}

func (r *ResearchRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM research_projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete research project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete research project: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
