package refscan

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lanternworks/refscan/scene"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

// scopeName is the instrumentation scope for tracers and meters created by
// default.
const scopeName = "github.com/lanternworks/refscan"

// DefaultMaxDepth bounds traversal depth when WithMaxDepth is not given.
// Nodes nested deeper than this are not visited.
const DefaultMaxDepth = 100

// Source yields one scene to scan under a stable label.
//
// Sources are lazy: Load is called once per scan, immediately before the
// scene is walked, so a list of sources never holds more than one scene in
// memory at a time.
type Source interface {
	// Label returns the context label findings from this source carry,
	// typically a scene path or "Project".
	Label() string

	// Load materializes the source's scene.
	Load(ctx context.Context) (*scene.Scene, error)
}

// Filter decides whether a node is inspected during a scan. Implementations
// must be safe for repeated calls; the walker consults the filter once per
// node.
type Filter interface {
	Match(sc *scene.Scene, id scene.NodeID) (bool, error)
}

// Result summarizes one scan.
type Result struct {
	// Scenes is the number of scenes that were walked.
	Scenes int `json:"scenes"`

	// SkippedSources is the number of sources that failed to load.
	SkippedSources int `json:"skipped_sources"`

	// Nodes is the number of nodes visited.
	Nodes int `json:"nodes"`

	// Parts is the number of parts inspected.
	Parts int `json:"parts"`

	// Refs is the number of object-reference properties classified.
	Refs int `json:"refs"`

	// Findings is the number of findings reported.
	Findings int `json:"findings"`
}

// add accumulates another result into r.
func (r *Result) add(other Result) {
	r.Scenes += other.Scenes
	r.SkippedSources += other.SkippedSources
	r.Nodes += other.Nodes
	r.Parts += other.Parts
	r.Refs += other.Refs
	r.Findings += other.Findings
}

// Scanner walks scenes and reports missing references.
//
// A Scanner is immutable after New and safe for use from multiple
// goroutines, though each scan runs entirely on its caller's goroutine and
// keeps no state between runs.
type Scanner struct {
	logger   *slog.Logger
	tracer   trace.Tracer
	meter    metric.Meter
	reporter Reporter
	filter   Filter
	maxDepth int
	metrics  *scanMetrics
}

// New creates a Scanner with the provided options.
//
// Example:
//
//	scanner, err := refscan.New(
//	    refscan.WithLogger(logger),
//	    refscan.WithMaxDepth(32),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) (*Scanner, error) {
	cfg := &config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.maxDepth <= 0 {
		return nil, NewValidationError("refscan.New",
			fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, cfg.maxDepth))
	}

	// Create default logger if not provided
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	if cfg.tracer == nil {
		cfg.tracer = nooptrace.NewTracerProvider().Tracer(scopeName)
	}
	if cfg.meter == nil {
		cfg.meter = noop.NewMeterProvider().Meter(scopeName)
	}
	if cfg.reporter == nil {
		cfg.reporter = NewLogReporter(cfg.logger)
	}

	s := &Scanner{
		logger:   cfg.logger,
		tracer:   cfg.tracer,
		meter:    cfg.meter,
		reporter: cfg.reporter,
		filter:   cfg.filter,
		maxDepth: cfg.maxDepth,
	}

	metrics, err := initScanMetrics(s.meter)
	if err != nil {
		return nil, NewInternalError("refscan.New", err)
	}
	s.metrics = metrics

	return s, nil
}

// ScanSources loads and scans each source in order. Each source is an
// independent traversal: findings carry that source's label and nothing
// leaks from one scene into the next.
//
// A source that fails to load is logged at error level and skipped; the
// remaining sources still run. The context is checked between sources, so
// cancellation takes effect at the next scene boundary.
func (s *Scanner) ScanSources(ctx context.Context, sources ...Source) (Result, error) {
	var total Result
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		if src == nil {
			return total, NewValidationError("Scanner.ScanSources", ErrNilSource)
		}

		sc, err := src.Load(ctx)
		if err != nil {
			s.logger.Error("source failed to load, skipping",
				"source", src.Label(),
				"error", err)
			total.SkippedSources++
			continue
		}

		res, err := s.ScanScene(ctx, src.Label(), sc)
		if err != nil {
			return total, err
		}
		total.add(res)
	}
	return total, nil
}
