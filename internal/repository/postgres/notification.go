package postgres

import (
	"context"
	"fmt"

	"github.com/kiema2001/prof-mbinda-backend/internal/db"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

var _ model.NotificationStore = (*NotificationRepository)(nil)

type NotificationRepository struct {
	db *db.DB
}

func NewNotificationRepository(db *db.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) List(ctx context.Context) ([]model.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, message, type, is_active, created_at
		FROM notifications
		WHERE is_active = true
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []model.Notification{}
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.IsActive, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (r *NotificationRepository) Create(ctx context.Context, n model.Notification) (model.Notification, error) {
	if n.Type == "" {
		n.Type = "info"
	}

	var saved model.Notification
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO notifications (title, message, type)
		VALUES ($1, $2, $3)
		RETURNING id, title, message, type, is_active, created_at
	`, n.Title, n.Message, n.Type).Scan(
		&saved.ID, &saved.Title, &saved.Message, &saved.Type, &saved.IsActive, &saved.CreatedAt,
	)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return saved, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
