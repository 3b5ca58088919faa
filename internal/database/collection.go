package database

import (
	"context"
	"time"

	"github.com/hrmatch/backend/internal/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection wraps a mongo collection so that every operation is timed,
// counted under its logical operation kind, and traced. Failed operations are
// recorded too: latency of errors is as interesting as latency of successes.
type Collection struct {
	coll    *mongo.Collection
	metrics *metrics.DatabaseMetrics
}

// Name returns the collection name
func (c *Collection) Name() string {
	return c.coll.Name()
}

func (c *Collection) observe(operation string, start time.Time) {
	c.metrics.RecordOperation(c.coll.Name(), operation, time.Since(start))
}

// FindOne executes a find returning at most one document
func (c *Collection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	ctx, span := startOperationSpan(ctx, c.coll.Name(), metrics.DBOpFind)
	defer span.End()
	defer c.observe(metrics.DBOpFind, time.Now())
	res := c.coll.FindOne(ctx, filter, opts...)
	if err := res.Err(); err != nil && err != mongo.ErrNoDocuments {
		span.RecordError(err)
	}
	return res
}

// Find executes a find returning a cursor over matching documents
func (c *Collection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	ctx, span := startOperationSpan(ctx, c.coll.Name(), metrics.DBOpFind)
	defer span.End()
	defer c.observe(metrics.DBOpFind, time.Now())
	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		span.RecordError(err)
	}
	return cursor, err
}

// CountDocuments counts documents matching the filter
func (c *Collection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	ctx, span := startOperationSpan(ctx, c.coll.Name(), metrics.DBOpFind)
	defer span.End()
	defer c.observe(metrics.DBOpFind, time.Now())
	count, err := c.coll.CountDocuments(ctx, filter, opts...)
	if err != nil {
		span.RecordError(err)
	}
	return count, err
}

// Aggregate executes an aggregation pipeline
func (c *Collection) Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error) {
	ctx, span := startOperationSpan(ctx, c.coll.Name(), metrics.DBOpFind)
	defer span.End()
	defer c.observe(metrics.DBOpFind, time.Now())
	cursor, err := c.coll.Aggregate(ctx, pipeline, opts...)
	if err != nil {
		span.RecordError(err)
	}
	return cursor, err
}

// InsertOne inserts a single document
func (c *Collection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	ctx, span := startOperationSpan(ctx, c.coll.Name(), metrics.DBOpInsert)
	defer span.End()
	defer c.observe(metrics.DBOpInsert, time.Now())
	res, err := c.coll.InsertOne(ctx, document, opts...)
	if err != nil {
		span.RecordError(err)
	}
	return res, err
}

// InsertMany inserts multiple documents
func (c *Collection) InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	ctx, span := startOperationSpan(ctx, c.coll.Name(), metrics.DBOpInsert)
	defer span.End()
	defer c.observe(metrics.DBOpInsert, time.Now())
	res, err := c.coll.InsertMany(ctx, documents, opts...)
	if err != nil {
		span.RecordError(err)
	}
	return res, err
}

// UpdateOne updates a single document matching the filter
func (c *Collection) UpdateOne(ctx context.Context, filter, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	ctx, span := startOperationSpan(ctx, c.coll.Name(), metrics.DBOpUpdate)
	defer span.End()
	defer c.observe(metrics.DBOpUpdate, time.Now())
	res, err := c.coll.UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		span.RecordError(err)
	}
	return res, err
}

// UpdateMany updates every document matching the filter
func (c *Collection) UpdateMany(ctx context.Context, filter, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	ctx, span := startOperationSpan(ctx, c.coll.Name(), metrics.DBOpUpdate)
	defer span.End()
	defer c.observe(metrics.DBOpUpdate, time.Now())
	res, err := c.coll.UpdateMany(ctx, filter, update, opts...)
	if err != nil {
		span.RecordError(err)
	}
	return res, err
}

// ReplaceOne replaces a single document matching the filter
func (c *Collection) ReplaceOne(ctx context.Context, filter, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
	ctx, span := startOperationSpan(ctx, c.coll.Name(), metrics.DBOpUpdate)
	defer span.End()
	defer c.observe(metrics.DBOpUpdate, time.Now())
	res, err := c.coll.ReplaceOne(ctx, filter, replacement, opts...)
	if err != nil {
		span.RecordError(err)
	}
	return res, err
}

// DeleteOne deletes a single document matching the filter
func (c *Collection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	ctx, span := startOperationSpan(ctx, c.coll.Name(), metrics.DBOpDelete)
	defer span.End()
	defer c.observe(metrics.DBOpDelete, time.Now())
	res, err := c.coll.DeleteOne(ctx, filter, opts...)
	if err != nil {
		span.RecordError(err)
	}
	return res, err
}

// DeleteMany deletes every document matching the filter
func (c *Collection) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	ctx, span := startOperationSpan(ctx, c.coll.Name(), metrics.DBOpDelete)
	defer span.End()
	defer c.observe(metrics.DBOpDelete, time.Now())
	res, err := c.coll.DeleteMany(ctx, filter, opts...)
	if err != nil {
		span.RecordError(err)
	}
	return res, err
}
