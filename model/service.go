package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is an offering that customers can book.
type Service struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	Duration     int                `json:"duration" bson:"duration"`
	Price        float64            `json:"price" bson:"price"`
	Category     string             `json:"category" bson:"category"`
	Availability []string           `json:"availability" bson:"availability"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// Now is the canonical timestamp for new and mutated entities:
// UTC, truncated to the millisecond precision the store persists.
func Now() time.Time {
	return NormalizeTime(time.Now())
}

// NormalizeTime converts a timestamp to its stored representation.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// ApplyDefaults fills the fields the caller may omit: a fresh id,
// created_at of now, updated_at equal to created_at.
func (s *Service) ApplyDefaults() {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = Now()
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = s.CreatedAt
	}
	s.CreatedAt = NormalizeTime(s.CreatedAt)
	s.UpdatedAt = NormalizeTime(s.UpdatedAt)
}

// ToDocument produces the store-ready record, with the identifier under the
// store's reserved key and timestamps normalized to UTC.
func (s Service) ToDocument() bson.M {
	return bson.M{
		"_id":          s.ID,
		"name":         s.Name,
		"description":  s.Description,
		"duration":     s.Duration,
		"price":        s.Price,
		"category":     s.Category,
		"availability": s.Availability,
		"created_at":   NormalizeTime(s.CreatedAt),
		"updated_at":   NormalizeTime(s.UpdatedAt),
	}
}

// ServiceFromDocument is the inverse of ToDocument. An absent record maps to
// (nil, nil): callers treat it as "no such entity", not a failure.
func ServiceFromDocument(doc bson.M) (*Service, error) {
	if doc == nil {
		return nil, nil
	}

	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var s Service
	if err := bson.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()

	return &s, nil
}
