package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

func notificationRows(typ string, created time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "message", "type", "is_active", "created_at",
	}).AddRow(
		"notif-1", "Lab meeting", "Moved to Friday", typ, true, created,
	)
}

func TestNotificationRepository_Create(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewNotificationRepository(database)

	mock.ExpectQuery(`INSERT INTO notifications`).
		WithArgs("Lab meeting", "Moved to Friday", "warning").
		WillReturnRows(notificationRows("warning", time.Now()))

	n, err := repo.Create(context.Background(), model.Notification{
		Title:   "Lab meeting",
		Message: "Moved to Friday",
		Type:    "warning",
	})
	require.NoError(t, err)
	assert.Equal(t, "notif-1", n.ID)
	assert.Equal(t, "warning", n.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_Create_DefaultsType(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewNotificationRepository(database)

	mock.ExpectQuery(`INSERT INTO notifications`).
		WithArgs("Lab meeting", "Moved to Friday", "info").
		WillReturnRows(notificationRows("info", time.Now()))

	n, err := repo.Create(context.Background(), model.Notification{
		Title:   "Lab meeting",
		Message: "Moved to Friday",
	})
	require.NoError(t, err)
	assert.Equal(t, "info", n.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_Delete_NotFound(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewNotificationRepository(database)

	mock.ExpectExec(`DELETE FROM notifications`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestNotificationRepository_Delete_RowsAffectedError(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewNotificationRepository(database)

	driverErr := errors.New("driver does not report rows affected")
	mock.ExpectExec(`DELETE FROM notifications`).
		WithArgs("notif-1").
		WillReturnResult(sqlmock.NewErrorResult(driverErr))

	err := repo.Delete(context.Background(), "notif-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, driverErr)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}
