package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// ServiceName identifies this tool in exported telemetry.
const ServiceName = "refscan"

// NewLogTracerProvider creates a TracerProvider configured with a
// LogSpanExporter, so every span ends up on the given logger.
//
// The provider uses a SimpleSpanProcessor for immediate export without
// batching: scans are one-shot, so each scene's span is logged as soon as
// the traversal completes. Call Shutdown on the returned provider when the
// scan run is over.
func NewLogTracerProvider(logger *slog.Logger) *sdktrace.TracerProvider {
	if logger == nil {
		logger = slog.Default()
	}

	exporter := NewLogSpanExporter(logger)
	processor := sdktrace.NewSimpleSpanProcessor(exporter)

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
		),
	)
	if err != nil {
		logger.Warn("failed to create resource, using default", "error", err)
		res = resource.Default()
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(processor),
		sdktrace.WithResource(res),
	)
}
