package store

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/glyphsmith/pkg/errors"
)

// Default MongoDB database and collection names.
const (
	DefaultMongoDatabase   = "glyphsmith"
	DefaultMongoCollection = "glyphs"
)

// glyphDocument is the stored form of one glyph.
type glyphDocument struct {
	Name      string    `bson:"_id"`
	SVG       []byte    `bson:"svg"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Mongo stores documents in a MongoDB collection keyed by name.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
	owned  bool
}

// NewMongo creates a store on an existing collection. Close will not
// disconnect the client.
func NewMongo(coll *mongo.Collection) *Mongo {
	return &Mongo{client: coll.Database().Client(), coll: coll}
}

// OpenMongo connects to the MongoDB deployment at uri and uses the given
// database and collection. Empty names select the defaults.
func OpenMongo(ctx context.Context, uri, database, collection string) (*Mongo, error) {
	if database == "" {
		database = DefaultMongoDatabase
	}
	if collection == "" {
		collection = DefaultMongoCollection
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect to mongodb")
	}
	if err := ping(ctx, func(ctx context.Context) error { return client.Ping(ctx, nil) }); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "ping mongodb")
	}
	return &Mongo{
		client: client,
		coll:   client.Database(database).Collection(collection),
		owned:  true,
	}, nil
}

// Put upserts the document.
func (s *Mongo) Put(ctx context.Context, name string, data []byte) error {
	if err := errors.ValidateResourceName(name); err != nil {
		return err
	}
	doc := glyphDocument{Name: name, SVG: data, UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "mongodb put %s", name)
	}
	return nil
}

// Get loads the document.
func (s *Mongo) Get(ctx context.Context, name string) ([]byte, error) {
	if err := errors.ValidateResourceName(name); err != nil {
		return nil, err
	}
	var doc glyphDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "mongodb get %s", name)
	}
	return doc.SVG, nil
}

// Delete removes the document.
func (s *Mongo) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateResourceName(name); err != nil {
		return err
	}
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "mongodb delete %s", name)
	}
	return nil
}

// Close disconnects the client if the store opened it.
func (s *Mongo) Close() error {
	if !s.owned {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure Mongo implements Store.
var _ Store = (*Mongo)(nil)
