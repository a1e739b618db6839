package refscan

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Scanner.
type Option func(*config)

// config holds configuration for a Scanner instance.
type config struct {
	logger   *slog.Logger
	tracer   trace.Tracer
	meter    metric.Meter
	reporter Reporter
	filter   Filter
	maxDepth int
}

// WithLogger sets a custom logger for the scanner.
// If not provided, a default logger will be created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for scan spans.
// If not provided, a no-op tracer is used.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter for scan counters.
// If not provided, a no-op meter is used.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) {
		c.meter = meter
	}
}

// WithReporter routes findings to the given reporter instead of the
// default error-level log reporter.
func WithReporter(r Reporter) Option {
	return func(c *config) {
		c.reporter = r
	}
}

// WithFilter restricts inspection to nodes matching the filter.
// Children of filtered-out nodes are still traversed.
func WithFilter(f Filter) Option {
	return func(c *config) {
		c.filter = f
	}
}

// WithMaxDepth overrides the traversal depth bound.
// The default is DefaultMaxDepth. Depth must be positive.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}
