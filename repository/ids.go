package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DecodeID converts an external string identifier to the store's native
// ObjectID key. Anything that is not a 24-character hex string fails with
// ErrInvalidID, so malformed ids never reach the database. A well-formed id
// may still refer to no record; existence is not checked here.
func DecodeID(external string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(external)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q is not a valid record id", ErrInvalidID, external)
	}
	return oid, nil
}

// EncodeID returns the external form of a native key. Total for any ObjectID
// the store produces.
func EncodeID(oid primitive.ObjectID) string {
	return oid.Hex()
}
