package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/hrmatch/backend/internal/config"
	"github.com/hrmatch/backend/internal/metrics"
	"github.com/hrmatch/backend/internal/tracing"
)

// installSpanRecorder swaps in a recording tracer provider for one test
func installSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = provider.Shutdown(context.Background())
	})
	return recorder
}

func spanAttributes(span sdktrace.ReadOnlySpan) map[attribute.Key]string {
	attrs := map[attribute.Key]string{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value.Emit()
	}
	return attrs
}

func TestCollection_FindEmitsSpan(t *testing.T) {
	recorder := installSpanRecorder(t)

	db, err := Connect(context.Background(), config.MongoConfig{
		URL:      "mongodb://localhost:27017",
		Database: "pod_1",
	}, nil)
	require.NoError(t, err)
	defer db.Close(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := db.Collection(CollectionResume).FindOne(ctx, map[string]string{"_id": "missing"})
	require.Error(t, res.Err())

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "db.find", span.Name())
	assert.Equal(t, trace.SpanKindClient, span.SpanKind())

	attrs := spanAttributes(span)
	assert.Equal(t, CollectionResume, attrs[attribute.Key(tracing.AttrCollection)])
	assert.Equal(t, metrics.DBOpFind, attrs[attribute.Key(tracing.AttrOperation)])

	// The operation error rides on the span as an exception event
	require.NotEmpty(t, span.Events())
	assert.Equal(t, "exception", span.Events()[0].Name)
}

func TestCollection_SpanNamesFollowOperationKind(t *testing.T) {
	recorder := installSpanRecorder(t)

	db, err := Connect(context.Background(), config.MongoConfig{
		URL:      "mongodb://localhost:27017",
		Database: "pod_1",
	}, nil)
	require.NoError(t, err)
	defer db.Close(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	coll := db.Collection(CollectionUsers)
	_, _ = coll.InsertOne(ctx, map[string]string{})
	_, _ = coll.UpdateOne(ctx, map[string]string{}, map[string]string{})
	_, _ = coll.DeleteOne(ctx, map[string]string{})

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "db.insert", spans[0].Name())
	assert.Equal(t, "db.update", spans[1].Name())
	assert.Equal(t, "db.delete", spans[2].Name())
}
