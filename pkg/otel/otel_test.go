package otel

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"octosupply/pkg/logger"
)

func TestAddSpanUsesInjectedTracer(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer tp.Shutdown(context.Background())

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	ctx, span := AddSpan(ctx, "getBranch", attribute.Int("id", 3))
	traceID := GetTraceID(ctx)
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "getBranch", spans[0].Name())
	assert.Equal(t, spans[0].SpanContext().TraceID().String(), traceID)
	assert.Contains(t, spans[0].Attributes(), attribute.Int("id", 3))
}

func TestAddSpanWithoutTracer(t *testing.T) {
	ctx, span := AddSpan(context.Background(), "orphan")
	defer span.End()
	assert.Empty(t, GetTraceID(ctx))
}

func TestInitTracingWithoutCollector(t *testing.T) {
	tp, shutdown, err := InitTracing(logger.Nop(), Config{ServiceName: "octosupply", Probability: 1})
	require.NoError(t, err)
	defer shutdown(context.Background())

	ctx, span := tp.Tracer("test").Start(context.Background(), "root")
	defer span.End()
	assert.NotEmpty(t, GetTraceID(ctx))
}

func TestInitTracingStdout(t *testing.T) {
	var buf bytes.Buffer
	tp, shutdown, err := InitTracing(logger.Nop(), Config{ServiceName: "octosupply", Probability: 1, Stdout: &buf})
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "listBranches")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"Name": "listBranches"`)
}
