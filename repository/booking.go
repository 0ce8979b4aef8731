package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"booking-api/model"
	"booking-api/schema"
)

// BookingRepository owns all queries against the bookings collection.
type BookingRepository struct {
	coll *mongo.Collection
	log  zerolog.Logger
}

func NewBookingRepository(db *mongo.Database, log zerolog.Logger) *BookingRepository {
	return &BookingRepository{
		coll: db.Collection("bookings"),
		log:  log.With().Str("collection", "bookings").Logger(),
	}
}

// EnsureIndexes creates the lookup indexes on date and service_id and the
// compound customer_name+date index. Idempotent; called once at startup.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "service_id", Value: 1}}},
		{Keys: bson.D{{Key: "customer_name", Value: 1}, {Key: "date", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create bookings indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking with model defaults applied. The service
// reference is parsed here; the store performs no referential check.
func (r *BookingRepository) Create(ctx context.Context, in schema.BookingCreate) (*model.Booking, error) {
	serviceID, err := model.ParseID(in.ServiceID)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		CustomerName: in.CustomerName,
		Date:         in.Date,
		ServiceID:    serviceID,
		Status:       in.Status,
		Notes:        in.Notes,
	}
	booking.ApplyDefaults()

	if _, err := r.coll.InsertOne(ctx, booking.ToDocument()); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	r.log.Debug().Str("id", booking.ID.Hex()).Str("service_id", in.ServiceID).Msg("booking created")
	return booking, nil
}

// GetByID returns the booking with the given string id, ErrInvalidID if the
// string is not an identifier, ErrNotFound if no document matches.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	booking, err := r.findOne(ctx, bson.M{"_id": oid})
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("booking with id %s %w", id, ErrNotFound)
	}
	return booking, err
}

// BookingFilter narrows a booking listing. Zero values mean no constraint;
// the date bounds are inclusive and combinable; customer name matches
// case-insensitively on any substring.
type BookingFilter struct {
	Status       model.BookingStatus
	DateFrom     *time.Time
	DateTo       *time.Time
	ServiceID    string
	CustomerName string
}

func (f BookingFilter) query() (bson.M, error) {
	query := bson.M{}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.DateFrom != nil || f.DateTo != nil {
		dateRange := bson.M{}
		if f.DateFrom != nil {
			dateRange["$gte"] = model.NormalizeTime(*f.DateFrom)
		}
		if f.DateTo != nil {
			dateRange["$lte"] = model.NormalizeTime(*f.DateTo)
		}
		query["date"] = dateRange
	}
	if f.ServiceID != "" {
		serviceID, err := model.ParseID(f.ServiceID)
		if err != nil {
			return nil, err
		}
		query["service_id"] = serviceID
	}
	if f.CustomerName != "" {
		query["customer_name"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(f.CustomerName),
			Options: "i",
		}
	}
	return query, nil
}

// List returns one page of bookings plus the total count matching the
// filter; the count ignores skip and limit.
func (r *BookingRepository) List(ctx context.Context, opt ListOptions, filter BookingFilter) ([]model.Booking, int64, error) {
	query, err := filter.query()
	if err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	cur, err := r.coll.Find(ctx, query, opt.find())
	if err != nil {
		return nil, 0, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := []model.Booking{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode booking: %w", err)
		}
		booking, err := model.BookingFromDocument(doc)
		if err != nil {
			return nil, 0, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, *booking)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, total, nil
}

// ListByService returns one page of a service's bookings sorted by date
// ascending, plus the total count for that service.
func (r *BookingRepository) ListByService(ctx context.Context, serviceID string, skip, limit int64) ([]model.Booking, int64, error) {
	opt := ListOptions{Skip: skip, Limit: limit, SortBy: "date", SortDirection: 1}
	return r.List(ctx, opt, BookingFilter{ServiceID: serviceID})
}

// Update applies the supplied fields to an existing booking and returns the
// re-read result. The current document is loaded first so a missing id is
// ErrNotFound rather than a zero-document update.
func (r *BookingRepository) Update(ctx context.Context, id string, in schema.BookingUpdate) (*model.Booking, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	set := in.Fields()
	if in.ServiceID != nil {
		serviceID, err := model.ParseID(*in.ServiceID)
		if err != nil {
			return nil, err
		}
		set["service_id"] = serviceID
	}

	if _, err := r.findOne(ctx, bson.M{"_id": oid}); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("booking with id %s %w", id, ErrNotFound)
		}
		return nil, err
	}

	set["updated_at"] = model.Now()

	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	return r.findOne(ctx, bson.M{"_id": oid})
}

// UpdateStatus changes only the status field. Any known status is accepted:
// transitions are not restricted.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	return r.Update(ctx, id, schema.BookingUpdate{Status: &status})
}

// Delete removes the booking with the given id; ErrNotFound when no
// document was removed.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	oid, err := model.ParseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("booking with id %s %w", id, ErrNotFound)
	}

	r.log.Debug().Str("id", id).Msg("booking deleted")
	return nil
}

func (r *BookingRepository) findOne(ctx context.Context, filter bson.M) (*model.Booking, error) {
	var doc bson.M
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return model.BookingFromDocument(doc)
}
