package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiema2001/prof-mbinda-backend/internal/db"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

func newMockDB(t *testing.T) (*db.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return &db.DB{DB: sqlDB}, mock
}

func TestUserRepository_GetByEmail(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewUserRepository(database)

	created := time.Now()
	mock.ExpectQuery(`SELECT id, email, password_hash, full_name, created_at`).
		WithArgs("admin@mbindalab.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "email", "password_hash", "full_name", "created_at"}).
				AddRow("user-1", "admin@mbindalab.com", "$2a$10$hash", "Administrator", created),
		)

	user, err := repo.GetByEmail(context.Background(), "admin@mbindalab.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Administrator", user.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewUserRepository(database)

	mock.ExpectQuery(`SELECT id, email, password_hash, full_name, created_at`).
		WithArgs("ghost@mbindalab.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "full_name", "created_at"}))

	_, err := repo.GetByEmail(context.Background(), "ghost@mbindalab.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewUserRepository(database)

	created := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("admin@mbindalab.com", "$2a$10$hash", "Administrator").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "email", "password_hash", "full_name", "created_at"}).
				AddRow("user-1", "admin@mbindalab.com", "$2a$10$hash", "Administrator", created),
		)

	user, err := repo.Create(context.Background(), model.User{
		Email:        "admin@mbindalab.com",
		PasswordHash: "$2a$10$hash",
		FullName:     "Administrator",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
