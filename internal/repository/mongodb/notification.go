package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

var _ model.NotificationStore = (*NotificationRepository)(nil)

type notificationDoc struct {
	ID        string    `bson:"id"`
	Title     string    `bson:"title"`
	Message   string    `bson:"message"`
	Type      string    `bson:"type"`
	IsActive  bool      `bson:"is_active"`
	CreatedAt time.Time `bson:"created_at"`
}

type NotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(database *mongo.Database) *NotificationRepository {
	return &NotificationRepository{collection: database.Collection("notifications")}
}

func (r *NotificationRepository) List(ctx context.Context) ([]model.Notification, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"is_active": true},
		options.Find().SetSort(bson.M{"created_at": -1}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	notifications := []model.Notification{}
	for cursor.Next(ctx) {
		var doc notificationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode notification: %w", err)
		}
		notifications = append(notifications, model.Notification(doc))
	}

	return notifications, cursor.Err()
}

func (r *NotificationRepository) Create(ctx context.Context, n model.Notification) (model.Notification, error) {
	doc := notificationDoc(n)
	doc.ID = uuid.NewString()
	doc.IsActive = true
	doc.CreatedAt = time.Now()
	if doc.Type == "" {
		doc.Type = "info"
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return model.Notification{}, fmt.Errorf("failed to insert notification: %w", err)
	}

	return model.Notification(doc), nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
