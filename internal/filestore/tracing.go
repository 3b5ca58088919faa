package filestore

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/hrmatch/backend/internal/metrics"
	"github.com/hrmatch/backend/internal/tracing"
)

// startUploadSpan starts a span for an upload
func startUploadSpan(ctx context.Context, filename string, size int64) (context.Context, trace.Span) {
	tracer := otel.Tracer("hrbackend.filestore")
	ctx, span := tracer.Start(ctx, "filestore.upload",
		trace.WithSpanKind(trace.SpanKindClient),
	)
	span.SetAttributes(
		tracing.FileName(filename),
		tracing.FileSize(size),
		tracing.Operation(metrics.FileOpUpload),
	)
	return ctx, span
}

// startDownloadSpan starts a span for a download
func startDownloadSpan(ctx context.Context, fileID string) (context.Context, trace.Span) {
	tracer := otel.Tracer("hrbackend.filestore")
	ctx, span := tracer.Start(ctx, "filestore.download",
		trace.WithSpanKind(trace.SpanKindClient),
	)
	span.SetAttributes(
		tracing.FileID(fileID),
		tracing.Operation(metrics.FileOpDownload),
	)
	return ctx, span
}

// startDeleteSpan starts a span for a delete
func startDeleteSpan(ctx context.Context, fileID string) (context.Context, trace.Span) {
	tracer := otel.Tracer("hrbackend.filestore")
	ctx, span := tracer.Start(ctx, "filestore.delete",
		trace.WithSpanKind(trace.SpanKindClient),
	)
	span.SetAttributes(
		tracing.FileID(fileID),
		tracing.Operation(metrics.FileOpDelete),
	)
	return ctx, span
}
