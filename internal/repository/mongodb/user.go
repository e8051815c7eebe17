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

const createIndexTimeout = 5 * time.Second

var _ model.UserStore = (*UserRepository)(nil)

type userDoc struct {
	ID           string    `bson:"id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	FullName     string    `bson:"full_name"`
	CreatedAt    time.Time `bson:"created_at"`
}

type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates the users collection store. Emails are
// stored in canonical lower-case and uniquely indexed.
func NewUserRepository(database *mongo.Database) (*UserRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), createIndexTimeout)
	defer cancel()

	unique := true
	collection := database.Collection("users")
	if _, err := collection.Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.M{"email": 1},
			Options: &options.IndexOptions{Unique: &unique},
		},
	); err != nil {
		return nil, fmt.Errorf("failed to index users collection: %w", err)
	}

	return &UserRepository{collection: collection}, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var doc userDoc
	res := r.collection.FindOne(ctx, bson.M{"email": canonicalEmail(email)})
	if res.Err() == mongo.ErrNoDocuments {
		return model.User{}, model.ErrNotFound
	}
	if res.Err() != nil {
		return model.User{}, fmt.Errorf("failed to find user by email: %w", res.Err())
	}
	if err := res.Decode(&doc); err != nil {
		return model.User{}, fmt.Errorf("failed to decode user: %w", err)
	}

	return model.User(doc), nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	doc := userDoc{
		ID:           uuid.NewString(),
		Email:        canonicalEmail(user.Email),
		PasswordHash: user.PasswordHash,
		FullName:     user.FullName,
		CreatedAt:    time.Now(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return model.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return model.User(doc), nil
}
