package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

func studentRows(created time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "degree", "type", "research_focus", "current_work", "profile_photo", "created_at",
	}).AddRow(
		"student-1", "John Doe", "PhD in Molecular Biology", "phd",
		"Plant Biotechnology", "CRISPR gene editing", "", created,
	)
}

func TestStudentRepository_List(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewStudentRepository(database)

	mock.ExpectQuery(`SELECT id, name, degree, type, research_focus, current_work, profile_photo, created_at`).
		WillReturnRows(studentRows(time.Now()))

	students, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "John Doe", students[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_Get_NotFound(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewStudentRepository(database)

	mock.ExpectQuery(`SELECT id, name, degree, type`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "degree", "type", "research_focus", "current_work", "profile_photo", "created_at",
		}))

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStudentRepository_Create(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewStudentRepository(database)

	mock.ExpectQuery(`INSERT INTO students`).
		WithArgs("John Doe", "PhD in Molecular Biology", "phd", "Plant Biotechnology", "CRISPR gene editing", "").
		WillReturnRows(studentRows(time.Now()))

	s, err := repo.Create(context.Background(), model.Student{
		Name:          "John Doe",
		Degree:        "PhD in Molecular Biology",
		Type:          "phd",
		ResearchFocus: "Plant Biotechnology",
		CurrentWork:   "CRISPR gene editing",
	})
	require.NoError(t, err)
	assert.Equal(t, "student-1", s.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_Delete_NotFound(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewStudentRepository(database)

	mock.ExpectExec(`DELETE FROM students`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStudentRepository_Delete(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewStudentRepository(database)

	mock.ExpectExec(`DELETE FROM students`).
		WithArgs("student-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "student-1"))
}
