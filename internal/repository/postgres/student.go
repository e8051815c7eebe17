package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kiema2001/prof-mbinda-backend/internal/db"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

var _ model.StudentStore = (*StudentRepository)(nil)

type StudentRepository struct {
	db *db.DB
}

func NewStudentRepository(db *db.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, degree, type, research_focus, current_work, profile_photo, created_at
		FROM students
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Degree, &s.Type,
			&s.ResearchFocus, &s.CurrentWork, &s.ProfilePhoto, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}

	return students, rows.Err()
}

func (r *StudentRepository) Get(ctx context.Context, id string) (model.Student, error) {
	var s model.Student
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, degree, type, research_focus, current_work, profile_photo, created_at
		FROM students
		WHERE id = $1
	`, id).Scan(
		&s.ID, &s.Name, &s.Degree, &s.Type,
		&s.ResearchFocus, &s.CurrentWork, &s.ProfilePhoto, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Student{}, model.ErrNotFound
		}
		return model.Student{}, fmt.Errorf("failed to get student: %w", err)
	}

	return s, nil
}

func (r *StudentRepository) Create(ctx context.Context, s model.Student) (model.Student, error) {
	var saved model.Student
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO students (name, degree, type, research_focus, current_work, profile_photo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, degree, type, research_focus, current_work, profile_photo, created_at
	`, s.Name, s.Degree, s.Type, s.ResearchFocus, s.CurrentWork, s.ProfilePhoto).Scan(
		&saved.ID, &saved.Name, &saved.Degree, &saved.Type,
		&saved.ResearchFocus, &saved.CurrentWork, &saved.ProfilePhoto, &saved.CreatedAt,
	)
	if err != nil {
		return model.Student{}, fmt.Errorf("failed to create student: %w", err)
	}

	return saved, nil
}

func (r *StudentRepository) Update(ctx context.Context, s model.Student) (model.Student, error) {
	var saved model.Student
	err := r.db.QueryRowContext(ctx, `
		UPDATE students
		SET name = $2, degree = $3, type = $4, research_focus = $5,
		    current_work = $6, profile_photo = $7
		WHERE id = $1
		RETURNING id, name, degree, type, research_focus, current_work, profile_photo, created_at
	`, s.ID, s.Name, s.Degree, s.Type, s.ResearchFocus, s.CurrentWork, s.ProfilePhoto).Scan(
		&saved.ID, &saved.Name, &saved.Degree, &saved.Type,
		&saved.ResearchFocus, &saved.CurrentWork, &saved.ProfilePhoto, &saved.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Student{}, model.ErrNotFound
		}
		return model.Student{}, fmt.Errorf("failed to update student: %w", err)
	}

	return saved, nil
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
