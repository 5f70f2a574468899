// Package models contains data models for the catalog service.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Item represents a priced listing in the catalog.
type Item struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Price float64            `json:"price" bson:"price"`
	Owner string             `json:"owner" bson:"owner"`
}

// CollectionName returns the mongo collection holding items.
func (Item) CollectionName() string {
	return "items"
}

// ItemUpdate carries the fields of a partial item update. Nil fields are
// left untouched by the merge.
type ItemUpdate struct {
	Name  *string  `json:"name,omitempty" bson:"name,omitempty"`
	Price *float64 `json:"price,omitempty" bson:"price,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil
}
