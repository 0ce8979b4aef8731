package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"booking-api/model"
	"booking-api/schema"
)

// ServiceRepository owns all queries against the services collection.
type ServiceRepository struct {
	coll *mongo.Collection
	log  zerolog.Logger
}

func NewServiceRepository(db *mongo.Database, log zerolog.Logger) *ServiceRepository {
	return &ServiceRepository{
		coll: db.Collection("services"),
		log:  log.With().Str("collection", "services").Logger(),
	}
}

// EnsureIndexes creates the uniqueness index on name. Idempotent; called
// once at startup before traffic is served.
func (r *ServiceRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create services indexes: %w", err)
	}
	return nil
}

// Create inserts a new service with model defaults applied.
func (r *ServiceRepository) Create(ctx context.Context, in schema.ServiceCreate) (*model.Service, error) {
	svc := &model.Service{
		Name:         in.Name,
		Description:  in.Description,
		Duration:     in.Duration,
		Price:        in.Price,
		Category:     in.Category,
		Availability: in.Availability,
	}
	svc.ApplyDefaults()

	if _, err := r.coll.InsertOne(ctx, svc.ToDocument()); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("service with name %q already exists: %w", svc.Name, ErrDuplicateKey)
		}
		return nil, fmt.Errorf("insert service: %w", err)
	}

	r.log.Debug().Str("id", svc.ID.Hex()).Str("name", svc.Name).Msg("service created")
	return svc, nil
}

// GetByID returns the service with the given string id, ErrInvalidID if the
// string is not an identifier, ErrNotFound if no document matches.
func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	svc, err := r.findOne(ctx, bson.M{"_id": oid})
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("service with id %s %w", id, ErrNotFound)
	}
	return svc, err
}

// GetByName returns the service with the given name, or ErrNotFound.
// Names are unique, so at most one document matches.
func (r *ServiceRepository) GetByName(ctx context.Context, name string) (*model.Service, error) {
	svc, err := r.findOne(ctx, bson.M{"name": name})
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("service with name %q %w", name, ErrNotFound)
	}
	return svc, err
}

// ServiceFilter narrows a service listing. Zero values mean no constraint.
type ServiceFilter struct {
	Category string
}

func (f ServiceFilter) query() bson.M {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = f.Category
	}
	return query
}

// List returns one page of services plus the total count matching the
// filter; the count ignores skip and limit.
func (r *ServiceRepository) List(ctx context.Context, opt ListOptions, filter ServiceFilter) ([]model.Service, int64, error) {
	query := filter.query()

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	cur, err := r.coll.Find(ctx, query, opt.find())
	if err != nil {
		return nil, 0, fmt.Errorf("find services: %w", err)
	}
	defer cur.Close(ctx)

	services := []model.Service{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode service: %w", err)
		}
		svc, err := model.ServiceFromDocument(doc)
		if err != nil {
			return nil, 0, fmt.Errorf("decode service: %w", err)
		}
		services = append(services, *svc)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate services: %w", err)
	}

	return services, total, nil
}

// Update applies the supplied fields to an existing service and returns the
// re-read result. The current document is loaded first so a missing id is
// ErrNotFound rather than a zero-document update.
func (r *ServiceRepository) Update(ctx context.Context, id string, in schema.ServiceUpdate) (*model.Service, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	if _, err := r.findOne(ctx, bson.M{"_id": oid}); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("service with id %s %w", id, ErrNotFound)
		}
		return nil, err
	}

	set := in.Fields()
	set["updated_at"] = model.Now()

	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("service name already exists: %w", ErrDuplicateKey)
		}
		return nil, fmt.Errorf("update service: %w", err)
	}

	return r.findOne(ctx, bson.M{"_id": oid})
}

// Delete removes the service with the given id; ErrNotFound when no
// document was removed.
func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	oid, err := model.ParseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("service with id %s %w", id, ErrNotFound)
	}

	r.log.Debug().Str("id", id).Msg("service deleted")
	return nil
}

func (r *ServiceRepository) findOne(ctx context.Context, filter bson.M) (*model.Service, error) {
	var doc bson.M
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	return model.ServiceFromDocument(doc)
}
