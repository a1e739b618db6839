// Package telemetry provides a log-backed OpenTelemetry trace pipeline, so
// scan spans can be inspected without running a collector.
package telemetry

import (
	"context"
	"encoding/hex"
	"log/slog"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// LogSpanExporter implements the OpenTelemetry SpanExporter interface and
// writes each completed span to a structured logger.
//
// The exporter is fire-and-forget: it never returns an error, so a logging
// problem cannot break the trace pipeline.
type LogSpanExporter struct {
	logger *slog.Logger
}

// NewLogSpanExporter creates an exporter writing to the given logger.
// If logger is nil, slog.Default() is used.
//
// The returned exporter should be registered with the OpenTelemetry SDK's
// TracerProvider; NewLogTracerProvider does that wiring.
func NewLogSpanExporter(logger *slog.Logger) *LogSpanExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSpanExporter{logger: logger}
}

// ExportSpans writes one log record per completed span. Span attributes
// are appended after the identity fields, in recording order.
func (e *LogSpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		sc := span.SpanContext()
		traceID := sc.TraceID()
		spanID := sc.SpanID()

		args := []any{
			"trace_id", hex.EncodeToString(traceID[:]),
			"span_id", hex.EncodeToString(spanID[:]),
		}
		if span.Parent().IsValid() {
			parentID := span.Parent().SpanID()
			args = append(args, "parent_span_id", hex.EncodeToString(parentID[:]))
		}

		status := span.Status()
		args = append(args,
			"duration_ms", span.EndTime().Sub(span.StartTime()).Milliseconds(),
			"status", status.Code.String(),
		)
		if status.Description != "" {
			args = append(args, "status_description", status.Description)
		}

		for _, attr := range span.Attributes() {
			args = append(args, string(attr.Key), attr.Value.Emit())
		}

		e.logger.Info("span "+span.Name(), args...)
	}
	return nil
}

// Shutdown performs cleanup when the exporter is being shut down.
// This implementation is a no-op as the logger manages its own lifecycle.
func (e *LogSpanExporter) Shutdown(ctx context.Context) error {
	return nil
}
