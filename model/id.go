package model

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID marks an identifier string that is not a valid 24-character
// hex ObjectID. Surfaced to clients as a 400.
var ErrInvalidID = errors.New("invalid identifier")

// ParseID converts the string form of an identifier to the store's native
// ObjectID. Together with ObjectID.Hex it is the only conversion pair between
// the two representations; no other layer accepts both forms.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}
