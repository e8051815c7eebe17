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

var _ model.ResearchStore = (*ResearchRepository)(nil)

type researchDoc struct {
	ID           string    `bson:"id"`
	Title        string    `bson:"title"`
	Description  string    `bson:"description"`
	DocumentPath string    `bson:"document_path"`
	CreatedAt    time.Time `bson:"created_at"`
}

type ResearchRepository struct {
	collection *mongo.Collection
}

func NewResearchRepository(database *mongo.Database) *ResearchRepository {
	return &ResearchRepository{collection: database.Collection("research")}
}

func (r *ResearchRepository) List(ctx context.Context) ([]model.ResearchProject, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.M{"title": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list research projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []model.ResearchProject{}
	for cursor.Next(ctx) {
		var doc researchDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode research project: %w", err)
		}
		projects = append(projects, model.ResearchProject(doc))
	}

	return projects, cursor.Err()
}

func (r *ResearchRepository) Get(ctx context.Context, id string) (model.ResearchProject, error) {
	var doc researchDoc
	res := r.collection.FindOne(ctx, bson.M{"id": id})
	if res.Err() == mongo.ErrNoDocuments {
		return model.ResearchProject{}, model.ErrNotFound
	}
	if res.Err() != nil {
		return model.ResearchProject{}, fmt.Errorf("failed to find research project: %w", res.Err())
	}
	if err := res.Decode(&doc); err != nil {
		return model.ResearchProject{}, fmt.Errorf("failed to decode research project: %w", err)
	}

	return model.ResearchProject(doc), nil
}

func (r *ResearchRepository) Create(ctx context.Context, p model.ResearchProject) (model.ResearchProject, error) {
	doc := researchDoc(p)
	doc.ID = uuid.NewString()
	doc.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return model.ResearchProject{}, fmt.Errorf("failed to insert research project: %w", err)
	}

	return model.ResearchProject(doc), nil
}

func (r *ResearchRepository) Update(ctx context.Context, p model.ResearchProject) (model.ResearchProject, error) {
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"id": p.ID},
		bson.M{"$set": bson.M{
			"title":         p.Title,
			"description":   p.Description,
			"document_path": p.DocumentPath,
		}},
	)
	if err != nil {
		return model.ResearchProject{}, fmt.Errorf("failed to update research project: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.ResearchProject{}, model.ErrNotFound
	}

	return r.Get(ctx, p.ID)
}

func (r *ResearchRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete research project: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
