package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors returned by repositories. Services match on these and map
// them to their own taxonomy; raw driver errors never cross the repository
// boundary unclassified.
var (
	// ErrNotFound indicates no document matched the filter.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate indicates a unique-index violation.
	ErrDuplicate = errors.New("duplicate key")
	// ErrInvalidID indicates a path identifier that is not a valid ObjectID hex.
	ErrInvalidID = errors.New("invalid object id")
)

// classify translates a mongo driver error into a sentinel where one applies.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}
