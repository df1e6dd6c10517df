// Package mongodb implements the record store adapter over a MongoDB
// collection.
package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/jn0w/Lindsey/domain/memory"
	pkgerrors "github.com/jn0w/Lindsey/pkg/errors"
	"github.com/jn0w/Lindsey/pkg/observability"
)

// MemoryRepository performs CRUD against the memories collection.
// Every operation dials its own client and disconnects before
// returning; there is no pooling and no connection state on the
// struct, so operations share nothing across requests.
type MemoryRepository struct {
	uri        string
	database   string
	collection string
	logger     *zap.Logger
	metrics    *observability.Collector
}

// memoryDocument is the persisted shape of a memory record
type memoryDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Date        time.Time          `bson:"date"`
	ImageURL    string             `bson:"imageUrl"`
	Tags        []string           `bson:"tags"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// NewMemoryRepository creates a repository for the given connection details
func NewMemoryRepository(uri, database, collection string, logger *zap.Logger, metrics *observability.Collector) *MemoryRepository {
	return &MemoryRepository{
		uri:        uri,
		database:   database,
		collection: collection,
		logger:     logger,
		metrics:    metrics,
	}
}

// FindAll returns every record in the store's natural return order
func (r *MemoryRepository) FindAll(ctx context.Context) ([]memory.Memory, error) {
	return r.findAll(ctx, "find_all", nil)
}

// FindAllByDateDesc returns every record sorted by memory date, newest
// first. The sort is pushed down to the store.
func (r *MemoryRepository) FindAllByDateDesc(ctx context.Context) ([]memory.Memory, error) {
	sort := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.findAll(ctx, "find_all_by_date", sort)
}

func (r *MemoryRepository) findAll(ctx context.Context, op string, opts *options.FindOptions) ([]memory.Memory, error) {
	var memories []memory.Memory

	err := r.withCollection(ctx, op, func(coll *mongo.Collection) error {
		var cursor *mongo.Cursor
		var err error
		if opts != nil {
			cursor, err = coll.Find(ctx, bson.D{}, opts)
		} else {
			cursor, err = coll.Find(ctx, bson.D{})
		}
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		var docs []memoryDocument
		if err := cursor.All(ctx, &docs); err != nil {
			return err
		}

		memories = make([]memory.Memory, 0, len(docs))
		for i := range docs {
			memories = append(memories, *docs[i].toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return memories, nil
}

// FindByID returns a single record by its identifier
func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*memory.Memory, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var found *memory.Memory
	err = r.withCollection(ctx, "find_by_id", func(coll *mongo.Collection) error {
		var doc memoryDocument
		if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return pkgerrors.NewNotFoundError("Memory")
			}
			return err
		}
		found = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Insert stores a new record and returns it with the assigned ID
func (r *MemoryRepository) Insert(ctx context.Context, m *memory.Memory) (*memory.Memory, error) {
	doc := fromDomain(m)

	var created *memory.Memory
	err := r.withCollection(ctx, "insert", func(coll *mongo.Collection) error {
		result, err := coll.InsertOne(ctx, doc)
		if err != nil {
			return err
		}
		doc.ID = result.InsertedID.(primitive.ObjectID)
		created = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Replace overwrites every field of an existing record except its ID
func (r *MemoryRepository) Replace(ctx context.Context, id string, m *memory.Memory) (*memory.Memory, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	doc := fromDomain(m)
	doc.ID = oid

	var updated *memory.Memory
	err = r.withCollection(ctx, "replace", func(coll *mongo.Collection) error {
		result, err := coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return pkgerrors.NewNotFoundError("Memory")
		}
		updated = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a record permanently
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	return r.withCollection(ctx, "delete", func(coll *mongo.Collection) error {
		result, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return pkgerrors.NewNotFoundError("Memory")
		}
		return nil
	})
}

// Ping verifies connectivity by running the admin ping command
func (r *MemoryRepository) Ping(ctx context.Context) error {
	start := time.Now()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(r.uri))
	if err != nil {
		r.observe("ping", "error", start)
		return pkgerrors.NewDatabaseError("ping", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			r.logger.Warn("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		r.observe("ping", "error", start)
		return pkgerrors.NewDatabaseError("ping", err)
	}

	r.observe("ping", "ok", start)
	return nil
}

// withCollection dials the store, runs fn against the configured
// collection and disconnects. Store failures come back as database
// errors carrying the operation name; typed application errors from fn
// pass through untouched.
func (r *MemoryRepository) withCollection(ctx context.Context, op string, fn func(coll *mongo.Collection) error) error {
	start := time.Now()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(r.uri))
	if err != nil {
		r.observe(op, "error", start)
		return pkgerrors.NewDatabaseError(op, err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			r.logger.Warn("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	if err := fn(client.Database(r.database).Collection(r.collection)); err != nil {
		r.observe(op, "error", start)
		if pkgerrors.GetAppError(err) != nil {
			return err
		}
		return pkgerrors.NewDatabaseError(op, err)
	}

	r.observe(op, "ok", start)
	return nil
}

func (r *MemoryRepository) observe(op, status string, start time.Time) {
	if r.metrics != nil {
		r.metrics.ObserveStoreOperation(op, status, time.Since(start))
	}
}

// parseID validates the identifier format before any lookup is
// attempted. A malformed id is a validation error, not a not-found.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, pkgerrors.NewValidationError("Invalid memory ID format")
	}
	return oid, nil
}

func (d *memoryDocument) toDomain() *memory.Memory {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &memory.Memory{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date,
		ImageURL:    d.ImageURL,
		Tags:        tags,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromDomain(m *memory.Memory) *memoryDocument {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return &memoryDocument{
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		ImageURL:    m.ImageURL,
		Tags:        tags,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
