package database

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/hrmatch/backend/internal/tracing"
)

// startOperationSpan starts a client span for a single collection operation
func startOperationSpan(ctx context.Context, collection, operation string) (context.Context, trace.Span) {
	tracer := otel.Tracer("hrbackend.database")
	ctx, span := tracer.Start(ctx, "db."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
	)
	span.SetAttributes(
		tracing.Collection(collection),
		tracing.Operation(operation),
	)
	return ctx, span
}
