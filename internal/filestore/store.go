package filestore

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/hrmatch/backend/internal/config"
	"github.com/hrmatch/backend/internal/database"
	"github.com/hrmatch/backend/internal/logger"
	"github.com/hrmatch/backend/internal/metrics"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Resume files are the only accepted uploads
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// gridFSFilesCollection is the GridFS metadata collection of the default bucket
const gridFSFilesCollection = "fs.files"

// Store is the GridFS-backed blob store. Upload size and file type policy
// is enforced here, before any bytes reach the bucket, and every operation
// is recorded on the file metrics.
type Store struct {
	bucket  *gridfs.Bucket
	files   *database.Collection
	metrics *metrics.FileMetrics
	limits  config.LimitsConfig
	log     zerolog.Logger
}

// NewStore creates a blob store over the database's GridFS bucket
func NewStore(db *database.DB, limits config.LimitsConfig, fileMetrics *metrics.FileMetrics) *Store {
	return &Store{
		bucket:  db.Bucket(),
		files:   db.Collection(gridFSFilesCollection),
		metrics: fileMetrics,
		limits:  limits,
		log:     logger.WithComponent("filestore"),
	}
}

// Upload validates and stores a file, returning its GridFS ID. Rejected
// uploads count as failed operations without touching the bucket.
func (s *Store) Upload(ctx context.Context, filename string, size int64, source io.Reader) (primitive.ObjectID, error) {
	ctx, span := startUploadSpan(ctx, filename, size)
	defer span.End()

	if err := s.validate(filename, size); err != nil {
		span.RecordError(err)
		s.metrics.RecordOperation(metrics.FileOpUpload, false)
		return primitive.NilObjectID, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		//nolint:errcheck // A deadline on a closed bucket surfaces on the upload itself
		_ = s.bucket.SetWriteDeadline(deadline)
	}

	opts := options.GridFSUpload().SetMetadata(bson.M{
		"type": metrics.StorageTypeResumes,
		"size": size,
	})
	id, err := s.bucket.UploadFromStream(filename, source, opts)
	if err != nil {
		span.RecordError(err)
		s.metrics.RecordOperation(metrics.FileOpUpload, false)
		return primitive.NilObjectID, err
	}

	s.metrics.RecordOperation(metrics.FileOpUpload, true)
	s.log.Debug().Str("filename", filename).Str("file_id", id.Hex()).Int64("size", size).Msg("File uploaded")

	return id, nil
}

// Download streams a stored file into w and returns the number of bytes copied
func (s *Store) Download(ctx context.Context, id primitive.ObjectID, w io.Writer) (int64, error) {
	ctx, span := startDownloadSpan(ctx, id.Hex())
	defer span.End()

	if deadline, ok := ctx.Deadline(); ok {
		//nolint:errcheck // A deadline on a closed bucket surfaces on the download itself
		_ = s.bucket.SetReadDeadline(deadline)
	}

	n, err := s.bucket.DownloadToStream(id, w)
	if err != nil {
		span.RecordError(err)
	}
	s.metrics.RecordOperation(metrics.FileOpDownload, err == nil)
	return n, err
}

// Delete removes a stored file and its chunks
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := startDeleteSpan(ctx, id.Hex())
	defer span.End()

	if deadline, ok := ctx.Deadline(); ok {
		//nolint:errcheck // A deadline on a closed bucket surfaces on the delete itself
		_ = s.bucket.SetWriteDeadline(deadline)
	}

	err := s.bucket.Delete(id)
	if err != nil {
		span.RecordError(err)
	}
	s.metrics.RecordOperation(metrics.FileOpDelete, err == nil)
	return err
}

// RefreshUsage recomputes storage usage per category from the GridFS file
// metadata and overwrites the storage gauges with the snapshot
func (s *Store) RefreshUsage(ctx context.Context) error {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$metadata.type"},
			{Key: "bytes", Value: bson.D{{Key: "$sum", Value: "$length"}}},
		}}},
	}

	cursor, err := s.files.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Type  string `bson:"_id"`
		Bytes int64  `bson:"bytes"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return err
	}

	usage := map[string]int64{
		metrics.StorageTypeResumes: 0,
		metrics.StorageTypeOther:   0,
	}
	for _, r := range results {
		if r.Type == metrics.StorageTypeResumes {
			usage[metrics.StorageTypeResumes] += r.Bytes
		} else {
			usage[metrics.StorageTypeOther] += r.Bytes
		}
	}

	for storageType, bytes := range usage {
		s.metrics.SetStorageBytes(storageType, bytes)
	}

	return nil
}

func (s *Store) validate(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return UnsupportedFileTypeError{Filename: filename, Extension: ext}
	}
	if limit := s.limits.MaxFileSizeBytes(); size > limit {
		return FileTooLargeError{Filename: filename, Size: size, Limit: limit}
	}
	return nil
}
