package refscan

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// scanMetrics holds the OpenTelemetry metric instruments for the scanner.
// These are created once in New and reused for all scans.
type scanMetrics struct {
	// nodes counts nodes visited during scans
	nodes metric.Int64Counter

	// parts counts parts inspected
	parts metric.Int64Counter

	// refs counts object-reference properties classified
	refs metric.Int64Counter

	// findings counts findings reported
	findings metric.Int64Counter

	// duration records per-scene walk duration in milliseconds
	duration metric.Float64Histogram
}

// initScanMetrics creates and initializes all metric instruments on the
// given meter.
func initScanMetrics(meter metric.Meter) (*scanMetrics, error) {
	m := &scanMetrics{}
	var err error

	m.nodes, err = meter.Int64Counter(
		"refscan.nodes",
		metric.WithDescription("Nodes visited during scans"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create nodes counter: %w", err)
	}

	m.parts, err = meter.Int64Counter(
		"refscan.parts",
		metric.WithDescription("Parts inspected during scans"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create parts counter: %w", err)
	}

	m.refs, err = meter.Int64Counter(
		"refscan.refs",
		metric.WithDescription("Object-reference properties classified during scans"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create refs counter: %w", err)
	}

	m.findings, err = meter.Int64Counter(
		"refscan.findings",
		metric.WithDescription("Findings reported during scans"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create findings counter: %w", err)
	}

	m.duration, err = meter.Float64Histogram(
		"refscan.scene.duration",
		metric.WithDescription("Per-scene walk duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return m, nil
}

// record flushes one scene's counts, batched per walk rather than per node.
func (m *scanMetrics) record(ctx context.Context, label string, res Result, elapsed time.Duration) {
	if m == nil {
		return
	}

	opts := metric.WithAttributes(
		attribute.String("refscan.context", label),
	)

	m.nodes.Add(ctx, int64(res.Nodes), opts)
	m.parts.Add(ctx, int64(res.Parts), opts)
	m.refs.Add(ctx, int64(res.Refs), opts)
	m.findings.Add(ctx, int64(res.Findings), opts)
	m.duration.Record(ctx, float64(elapsed.Milliseconds()), opts)
}
