package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListOptions carries pagination and sorting for list queries. Sort is
// single-field with no secondary tie-break: ties keep store-native order.
type ListOptions struct {
	Skip          int64
	Limit         int64
	SortBy        string
	SortDirection int
}

func (o ListOptions) find() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: o.SortBy, Value: o.SortDirection}}).
		SetSkip(o.Skip).
		SetLimit(o.Limit)
}
