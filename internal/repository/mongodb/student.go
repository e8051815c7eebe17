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

var _ model.StudentStore = (*StudentRepository)(nil)

type studentDoc struct {
	ID            string    `bson:"id"`
	Name          string    `bson:"name"`
	Degree        string    `bson:"degree"`
	Type          string    `bson:"type"`
	ResearchFocus string    `bson:"research_focus"`
	CurrentWork   string    `bson:"current_work"`
	ProfilePhoto  string    `bson:"profile_photo"`
	CreatedAt     time.Time `bson:"created_at"`
}

type StudentRepository struct {
	collection *mongo.Collection
}

func NewStudentRepository(database *mongo.Database) *StudentRepository {
	return &StudentRepository{collection: database.Collection("students")}
}

func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.M{"name": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []model.Student{}
	for cursor.Next(ctx) {
		var doc studentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode student: %w", err)
		}
		students = append(students, model.Student(doc))
	}

	return students, cursor.Err()
}

func (r *StudentRepository) Get(ctx context.Context, id string) (model.Student, error) {
	var doc studentDoc
	res := r.collection.FindOne(ctx, bson.M{"id": id})
	if res.Err() == mongo.ErrNoDocuments {
		return model.Student{}, model.ErrNotFound
	}
	if res.Err() != nil {
		return model.Student{}, fmt.Errorf("failed to find student: %w", res.Err())
	}
	if err := res.Decode(&doc); err != nil {
		return model.Student{}, fmt.Errorf("failed to decode student: %w", err)
	}

	return model.Student(doc), nil
}

func (r *StudentRepository) Create(ctx context.Context, s model.Student) (model.Student, error) {
	doc := studentDoc(s)
	doc.ID = uuid.NewString()
	doc.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return model.Student{}, fmt.Errorf("failed to insert student: %w", err)
	}

	return model.Student(doc), nil
}

func (r *StudentRepository) Update(ctx context.Context, s model.Student) (model.Student, error) {
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"id": s.ID},
		bson.M{"$set": bson.M{
			"name":           s.Name,
			"degree":         s.Degree,
			"type":           s.Type,
			"research_focus": s.ResearchFocus,
			"current_work":   s.CurrentWork,
			"profile_photo":  s.ProfilePhoto,
		}},
	)
	if err != nil {
		return model.Student{}, fmt.Errorf("failed to update student: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.Student{}, model.ErrNotFound
	}

	return r.Get(ctx, s.ID)
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
