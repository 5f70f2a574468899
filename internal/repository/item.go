package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kugicode/catalog-service/internal/models"
)

// UpdateOutcome reports what a partial update did to the matched document.
type UpdateOutcome struct {
	// Modified is false when the document matched but every supplied value
	// was identical to the stored one.
	Modified bool
}

// ItemRepository defines the interface for item data operations.
type ItemRepository interface {
	FindAll(ctx context.Context) ([]models.Item, error)
	FindByID(ctx context.Context, id string) (*models.Item, error)
	FindByOwner(ctx context.Context, owner string) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	UpdateByID(ctx context.Context, id string, update models.ItemUpdate) (UpdateOutcome, error)
	DeleteOwned(ctx context.Context, id, owner string) error
}

type itemRepository struct {
	col *mongo.Collection
}

// NewItemRepository creates an ItemRepository over the given database.
func NewItemRepository(db *mongo.Database) ItemRepository {
	return &itemRepository{col: db.Collection(models.Item{}.CollectionName())}
}

func (r *itemRepository) FindAll(ctx context.Context) ([]models.Item, error) {
	return r.find(ctx, bson.M{})
}

func (r *itemRepository) FindByOwner(ctx context.Context, owner string) ([]models.Item, error) {
	return r.find(ctx, bson.M{"owner": owner})
}

func (r *itemRepository) find(ctx context.Context, filter bson.M) ([]models.Item, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	// An empty result is a valid result, never nil.
	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

func (r *itemRepository) FindByID(ctx context.Context, id string) (*models.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var item models.Item
	err = classify(r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&item))
	if err == ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find item %s: %w", id, err)
	}
	return &item, nil
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

// UpdateByID merges only the fields present in update into the matched
// document. Absent fields are never touched.
func (r *itemRepository) UpdateByID(ctx context.Context, id string, update models.ItemUpdate) (UpdateOutcome, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateOutcome{}, ErrInvalidID
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return UpdateOutcome{}, fmt.Errorf("failed to update item %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return UpdateOutcome{}, ErrNotFound
	}
	return UpdateOutcome{Modified: res.ModifiedCount > 0}, nil
}

// DeleteOwned removes the item only when both the id and the owner match, so
// a caller can never delete another owner's item.
func (r *itemRepository) DeleteOwned(ctx context.Context, id, owner string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner": owner})
	if err != nil {
		return fmt.Errorf("failed to delete item %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
