package store

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/layout"
)

// Collection names used by the Mongo backend.
const (
	mongoLayoutCollection = "layouts"
	mongoMetaCollection   = "meta"
	mongoMostRecentID     = "most-recent"
)

// MongoConfig holds connection settings for the MongoDB backend.
type MongoConfig struct {
	URI      string // mongodb:// connection string
	Database string // defaults to "gridboard"
}

// MongoStore keeps one document per layout in a MongoDB collection, plus a
// pointer document in a meta collection. Snapshots are stored as raw wire
// JSON so the lenient decode path applies to Mongo records exactly as it
// does to files.
type MongoStore struct {
	client  *mongo.Client
	layouts *mongo.Collection
	meta    *mongo.Collection
}

// layoutDoc is the stored document shape.
type layoutDoc struct {
	Name    string    `bson:"_id"`
	Data    []byte    `bson:"data"`
	SavedAt time.Time `bson:"saved_at"`
}

type pointerDoc struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "gridboard"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "ping mongodb")
	}

	db := client.Database(cfg.Database)
	return &MongoStore{
		client:  client,
		layouts: db.Collection(mongoLayoutCollection),
		meta:    db.Collection(mongoMetaCollection),
	}, nil
}

// Save upserts the layout document and the most-recent pointer.
func (s *MongoStore) Save(ctx context.Context, snap *layout.Snapshot) error {
	if err := errors.ValidateLayoutName(snap.Name); err != nil {
		return err
	}
	data, err := layout.Encode(snap)
	if err != nil {
		return err
	}

	doc := layoutDoc{Name: snap.Name, Data: data, SavedAt: snap.SavedAt}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.layouts.ReplaceOne(ctx, bson.M{"_id": snap.Name}, doc, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "save layout %q", snap.Name)
	}

	ptr := pointerDoc{ID: mongoMostRecentID, Name: snap.Name}
	if _, err := s.meta.ReplaceOne(ctx, bson.M{"_id": mongoMostRecentID}, ptr, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "update most-recent pointer")
	}
	return nil
}

// Load retrieves and decodes the layout document under name.
func (s *MongoStore) Load(ctx context.Context, name string) (*layout.Snapshot, error) {
	if err := errors.ValidateLayoutName(name); err != nil {
		return nil, err
	}

	var doc layoutDoc
	err := s.layouts.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "load layout %q", name)
	}

	snap, err := layout.Decode(doc.Data)
	if err != nil {
		return nil, ErrNotFound
	}
	snap.Name = name
	return snap, nil
}

// Delete removes the layout document.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateLayoutName(name); err != nil {
		return err
	}
	if _, err := s.layouts.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "delete layout %q", name)
	}
	return nil
}

// MostRecent resolves the pointer document and loads the layout it names.
func (s *MongoStore) MostRecent(ctx context.Context) (*layout.Snapshot, error) {
	var ptr pointerDoc
	err := s.meta.FindOne(ctx, bson.M{"_id": mongoMostRecentID}).Decode(&ptr)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "read most-recent pointer")
	}
	return s.Load(ctx, ptr.Name)
}

// List returns the stored layout names sorted lexically.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	values, err := s.layouts.Distinct(ctx, "_id", bson.M{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "list layouts")
	}

	names := make([]string, 0, len(values))
	for _, v := range values {
		if name, ok := v.(string); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Close disconnects the Mongo client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
