package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func TestLogSpanExporter_EmptyBatch(t *testing.T) {
	var logBuf bytes.Buffer
	exporter := NewLogSpanExporter(slog.New(slog.NewTextHandler(&logBuf, nil)))

	require.NoError(t, exporter.ExportSpans(context.Background(), nil))
	assert.Empty(t, logBuf.String())
}

func TestLogSpanExporter_Shutdown(t *testing.T) {
	exporter := NewLogSpanExporter(nil)
	assert.NoError(t, exporter.Shutdown(context.Background()))
}

func TestLogTracerProvider_ExportsOnSpanEnd(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	tp := NewLogTracerProvider(logger)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tracer := tp.Tracer("test")
	_, span := tracer.Start(context.Background(), "refscan.scene")
	span.SetAttributes(attribute.String("refscan.context", "Scenes/Level01.scene.yaml"))
	span.SetStatus(codes.Error, "missing references found")
	span.End()

	logOutput := logBuf.String()
	assert.Contains(t, logOutput, "span refscan.scene", "span name becomes the log message")
	assert.Contains(t, logOutput, "trace_id=")
	assert.Contains(t, logOutput, "span_id=")
	assert.Contains(t, logOutput, "duration_ms=")
	assert.Contains(t, logOutput, "status=Error")
	assert.Contains(t, logOutput, "missing references found")
	assert.Contains(t, logOutput, "refscan.context=Scenes/Level01.scene.yaml")
}

func TestLogTracerProvider_NestedSpansCarryParent(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	tp := NewLogTracerProvider(logger)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tracer := tp.Tracer("test")
	ctx, parent := tracer.Start(context.Background(), "run")
	_, child := tracer.Start(ctx, "scene")
	child.End()
	parent.End()

	assert.Contains(t, logBuf.String(), "parent_span_id=", "child spans record their parent")
}
