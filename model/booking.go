package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
	StatusCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

// AllowedOnCreate reports whether a booking may be created in status s.
func (s BookingStatus) AllowedOnCreate() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Booking is a reservation of a service by a customer at a point in time.
// service_id references a Service; the store does not enforce the reference.
type Booking struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	CustomerName string             `json:"customer_name" bson:"customer_name"`
	Date         time.Time          `json:"date" bson:"date"`
	ServiceID    primitive.ObjectID `json:"service_id" bson:"service_id"`
	Status       BookingStatus      `json:"status" bson:"status"`
	Notes        string             `json:"notes" bson:"notes"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// ApplyDefaults fills the fields the caller may omit: a fresh id, pending
// status, created_at of now, updated_at equal to created_at.
func (b *Booking) ApplyDefaults() {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = Now()
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}
	b.Date = NormalizeTime(b.Date)
	b.CreatedAt = NormalizeTime(b.CreatedAt)
	b.UpdatedAt = NormalizeTime(b.UpdatedAt)
}

// ToDocument produces the store-ready record. The service reference is kept
// in its native ObjectID form inside the document.
func (b Booking) ToDocument() bson.M {
	return bson.M{
		"_id":           b.ID,
		"customer_name": b.CustomerName,
		"date":          NormalizeTime(b.Date),
		"service_id":    b.ServiceID,
		"status":        b.Status,
		"notes":         b.Notes,
		"created_at":    NormalizeTime(b.CreatedAt),
		"updated_at":    NormalizeTime(b.UpdatedAt),
	}
}

// BookingFromDocument is the inverse of ToDocument. An absent record maps to
// (nil, nil).
func BookingFromDocument(doc bson.M) (*Booking, error) {
	if doc == nil {
		return nil, nil
	}

	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var b Booking
	if err := bson.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	b.Date = b.Date.UTC()
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()

	return &b, nil
}
