package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type profileDoc struct {
	Bio          string `bson:"bio"`
	Contact      string `bson:"contact"`
	ProfilePhoto string `bson:"profile_photo"`
}

// ProfileRepository manages the singleton profile document.
type ProfileRepository struct {
	collection *mongo.Collection
}

func NewProfileRepository(database *mongo.Database) *ProfileRepository {
	return &ProfileRepository{collection: database.Collection("profile")}
}

func (r *ProfileRepository) Get(ctx context.Context) (model.Profile, error) {
	var doc profileDoc
	res := r.collection.FindOne(ctx, bson.M{})
	if res.Err() == mongo.ErrNoDocuments {
		return model.Profile{}, model.ErrNotFound
	}
	if res.Err() != nil {
		return model.Profile{}, fmt.Errorf("failed to find profile: %w", res.Err())
	}
	if err := res.Decode(&doc); err != nil {
		return model.Profile{}, fmt.Errorf("failed to decode profile: %w", err)
	}

	return model.Profile(doc), nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p model.Profile) error {
	upsert := true
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{},
		bson.M{"$set": profileDoc(p)},
		&options.UpdateOptions{Upsert: &upsert},
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
