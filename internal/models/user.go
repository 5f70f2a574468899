// Package models contains data models for the catalog service.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a registered account.
//
// The password is stored verbatim. Hardening the credential storage is a
// known gap, tracked separately from this service's contract.
type User struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"password" bson:"password"`
}

// CollectionName returns the mongo collection holding users.
func (User) CollectionName() string {
	return "users"
}
