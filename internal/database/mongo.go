package database

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"newsapi/internal/config"
)

// Collection names used across the application.
const (
	CollectionNews    = "news"
	CollectionUpdates = "updates"
	CollectionAdmins  = "admins"
	CollectionUploads = "uploads"
)

var mongoConnect = mongo.Connect

// Mongo is the process-wide document store handle. It is safe for concurrent use and
// should be created once at startup and closed on shutdown.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// ClientOptions builds driver options from configuration.
func ClientOptions(c config.MongoConfig) (*options.ClientOptions, error) {
	if c.URL == "" || c.Database == "" {
		return nil, fmt.Errorf("invalid mongo config: url and database are required")
	}

	opts := options.Client().ApplyURI(c.URL).SetAppName("newsapi")
	if c.ConnectTimeoutSec > 0 {
		timeout := time.Duration(c.ConnectTimeoutSec) * time.Second
		opts.SetConnectTimeout(timeout).SetServerSelectionTimeout(timeout)
	}
	if c.TLSAllowInvalid {
		opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // development clusters only
	}
	return opts, nil
}

// NewMongo connects to the document store and verifies connectivity with a short ping.
func NewMongo(c config.MongoConfig) (*Mongo, error) {
	opts, err := ClientOptions(c)
	if err != nil {
		return nil, err
	}

	client, err := mongoConnect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Mongo{client: client, db: client.Database(c.Database)}, nil
}

// Collection returns a handle to the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Indexes returns the index view of the named collection.
func (m *Mongo) Indexes(collection string) Indexer {
	return m.db.Collection(collection).Indexes()
}

// Ping checks connectivity to the primary.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Indexer is the subset of mongo.IndexView used to bootstrap indexes.
type Indexer interface {
	CreateOne(ctx context.Context, model mongo.IndexModel, opts ...options.Lister[options.CreateIndexesOptions]) (string, error)
}

// TTLIndex describes an index that makes the store delete documents seconds after field.
func TTLIndex(field string, seconds int32) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(seconds),
	}
}

// EnsureTTLIndex creates (or confirms) a time-to-live index on field.
func EnsureTTLIndex(ctx context.Context, idx Indexer, field string, seconds int32) error {
	if _, err := idx.CreateOne(ctx, TTLIndex(field, seconds)); err != nil {
		return fmt.Errorf("create ttl index on %s: %w", field, err)
	}
	return nil
}
