// Package repository provides the data access layer for the catalog service.
package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kugicode/catalog-service/internal/models"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByCredentials(ctx context.Context, username, password string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	DeleteByUsername(ctx context.Context, username string) error
}

type userRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates a UserRepository over the given database and
// ensures the unique username index exists. Uniqueness is enforced by the
// store, never by a prior lookup, so concurrent registrations of the same
// username cannot both succeed.
func NewUserRepository(ctx context.Context, db *mongo.Database) (UserRepository, error) {
	col := db.Collection(models.User{}.CollectionName())

	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create username index: %w", err)
	}

	return &userRepository{col: col}, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := classify(r.col.FindOne(ctx, bson.M{"username": username}).Decode(&user))
	if err == ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %q: %w", username, err)
	}
	return &user, nil
}

// FindByCredentials matches username and password exactly, as stored.
func (r *userRepository) FindByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := classify(r.col.FindOne(ctx, bson.M{"username": username, "password": password}).Decode(&user))
	if err == ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %q by credentials: %w", username, err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	res, err := r.col.InsertOne(ctx, user)
	if err := classify(err); err != nil {
		if err == ErrDuplicate {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user %q: %w", user.Username, err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (r *userRepository) DeleteByUsername(ctx context.Context, username string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return fmt.Errorf("failed to delete user %q: %w", username, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
