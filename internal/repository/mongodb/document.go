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

var _ model.DocumentStore = (*DocumentRepository)(nil)

type documentDoc struct {
	ID          string    `bson:"id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	FilePath    string    `bson:"file_path"`
	FileSize    int64     `bson:"file_size"`
	FileType    string    `bson:"file_type"`
	CreatedAt   time.Time `bson:"created_at"`
}

type DocumentRepository struct {
	collection *mongo.Collection
}

func NewDocumentRepository(database *mongo.Database) *DocumentRepository {
	return &DocumentRepository{collection: database.Collection("documents")}
}

func (r *DocumentRepository) List(ctx context.Context) ([]model.Document, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.M{"created_at": -1}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer cursor.Close(ctx)

	documents := []model.Document{}
	for cursor.Next(ctx) {
		var doc documentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		documents = append(documents, model.Document(doc))
	}

	return documents, cursor.Err()
}

func (r *DocumentRepository) Get(ctx context.Context, id string) (model.Document, error) {
	var doc documentDoc
	res := r.collection.FindOne(ctx, bson.M{"id": id})
	if res.Err() == mongo.ErrNoDocuments {
		return model.Document{}, model.ErrNotFound
	}
	if res.Err() != nil {
		return model.Document{}, fmt.Errorf("failed to find document: %w", res.Err())
	}
	if err := res.Decode(&doc); err != nil {
		return model.Document{}, fmt.Errorf("failed to decode document: %w", err)
	}

	return model.Document(doc), nil
}

func (r *DocumentRepository) Create(ctx context.Context, d model.Document) (model.Document, error) {
	doc := documentDoc(d)
	doc.ID = uuid.NewString()
	doc.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return model.Document{}, fmt.Errorf("failed to insert document: %w", err)
	}

	return model.Document(doc), nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
