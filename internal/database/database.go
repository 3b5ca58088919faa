package database

import (
	"context"
	"fmt"

	"github.com/hrmatch/backend/internal/config"
	"github.com/hrmatch/backend/internal/logger"
	"github.com/hrmatch/backend/internal/metrics"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB is the document store handle. Collections obtained through it are
// instrumented: every operation feeds the database metrics.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	bucket   *gridfs.Bucket
	metrics  *metrics.DatabaseMetrics
	log      zerolog.Logger
}

// Connect establishes the MongoDB connection using options derived from the
// connection string shape. dbMetrics may be nil, in which case operations
// are not recorded.
func Connect(ctx context.Context, cfg config.MongoConfig, dbMetrics *metrics.DatabaseMetrics) (*DB, error) {
	client, err := mongo.Connect(ctx, clientOptionsFor(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	database := client.Database(cfg.Database)

	bucket, err := gridfs.NewBucket(database)
	if err != nil {
		// Disconnect errors are secondary to the bucket failure
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create gridfs bucket: %w", err)
	}

	db := &DB{
		client:   client,
		database: database,
		bucket:   bucket,
		metrics:  dbMetrics,
		log:      logger.WithComponent("database"),
	}

	db.log.Info().Str("database", cfg.Database).Msg("MongoDB client initialized")

	return db, nil
}

// Ping verifies the connection against the primary
func (d *DB) Ping(ctx context.Context) error {
	if err := d.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

// Collection returns an instrumented handle for a logical collection
func (d *DB) Collection(name string) *Collection {
	return &Collection{
		coll:    d.database.Collection(name),
		metrics: d.metrics,
	}
}

// Bucket returns the GridFS bucket for blob storage
func (d *DB) Bucket() *gridfs.Bucket {
	return d.bucket
}

// Name returns the database name
func (d *DB) Name() string {
	return d.database.Name()
}

// Close disconnects the client
func (d *DB) Close(ctx context.Context) error {
	d.log.Info().Msg("Closing MongoDB connection")
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	return nil
}
