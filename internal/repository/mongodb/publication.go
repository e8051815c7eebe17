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

var _ model.PublicationStore = (*PublicationRepository)(nil)

type publicationDoc struct {
	ID           string    `bson:"id"`
	Title        string    `bson:"title"`
	Details      string    `bson:"details"`
	Year         int       `bson:"year"`
	Link         string    `bson:"link"`
	DocumentPath string    `bson:"document_path"`
	CreatedAt    time.Time `bson:"created_at"`
}

type PublicationRepository struct {
	collection *mongo.Collection
}

func NewPublicationRepository(database *mongo.Database) *PublicationRepository {
	return &PublicationRepository{collection: database.Collection("publications")}
}

func (r *PublicationRepository) List(ctx context.Context) ([]model.Publication, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "title", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}
	defer cursor.Close(ctx)

	pubs := []model.Publication{}
	for cursor.Next(ctx) {
		var doc publicationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode publication: %w", err)
		}
		pubs = append(pubs, model.Publication(doc))
	}

	return pubs, cursor.Err()
}

func (r *PublicationRepository) Get(ctx context.Context, id string) (model.Publication, error) {
	var doc publicationDoc
	res := r.collection.FindOne(ctx, bson.M{"id": id})
	if res.Err() == mongo.ErrNoDocuments {
		return model.Publication{}, model.ErrNotFound
	}
	if res.Err() != nil {
		return model.Publication{}, fmt.Errorf("failed to find publication: %w", res.Err())
	}
	if err := res.Decode(&doc); err != nil {
		return model.Publication{}, fmt.Errorf("failed to decode publication: %w", err)
	}

	return model.Publication(doc), nil
}

func (r *PublicationRepository) Create(ctx context.Context, p model.Publication) (model.Publication, error) {
	doc := publicationDoc(p)
	doc.ID = uuid.NewString()
	doc.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return model.Publication{}, fmt.Errorf("failed to insert publication: %w", err)
	}

	return model.Publication(doc), nil
}

func (r *PublicationRepository) Update(ctx context.Context, p model.Publication) (model.Publication, error) {
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"id": p.ID},
		bson.M{"$set": bson.M{
			"title":         p.Title,
			"details":       p.Details,
			"year":          p.Year,
			"link":          p.Link,
			"document_path": p.DocumentPath,
		}},
	)
	if err != nil {
		return model.Publication{}, fmt.Errorf("failed to update publication: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.Publication{}, model.ErrNotFound
	}

	return r.Get(ctx, p.ID)
}

func (r *PublicationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete publication: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
