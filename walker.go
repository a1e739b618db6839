package refscan

import (
	"context"
	"time"

	"github.com/lanternworks/refscan/scene"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// walk carries the per-traversal state shared by the walker and the
// inspector. A fresh walk is created for every scene, so concurrent scans
// on one Scanner do not interfere.
type walk struct {
	label     string
	sc        *scene.Scene
	res       Result
	truncated bool
}

// ScanScene walks every node reachable from the scene's roots and reports
// missing references under the given context label.
//
// The traversal is depth-first and pre-order: a node's parts are inspected
// before its children, children in declaration order, roots in root-set
// order, so findings come out in a deterministic order. Inactive nodes are
// visited like any other. A scene with no roots is a successful no-op.
//
// The scene is not mutated.
func (s *Scanner) ScanScene(ctx context.Context, label string, sc *scene.Scene) (Result, error) {
	if sc == nil {
		return Result{}, NewValidationError("Scanner.ScanScene", ErrNilScene)
	}

	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "refscan.scene", trace.WithAttributes(
		attribute.String("refscan.context", label),
		attribute.String("refscan.scene", sc.Name()),
	))
	defer span.End()

	w := &walk{label: label, sc: sc}
	w.res.Scenes = 1
	for _, root := range sc.Roots() {
		s.visit(w, root, 0)
	}

	span.SetAttributes(
		attribute.Int("refscan.nodes", w.res.Nodes),
		attribute.Int("refscan.refs", w.res.Refs),
		attribute.Int("refscan.findings", w.res.Findings),
	)
	if w.res.Findings > 0 {
		span.SetStatus(codes.Error, "missing references found")
	} else {
		span.SetStatus(codes.Ok, "")
	}

	s.metrics.record(ctx, w.label, w.res, time.Since(start))

	s.logger.Debug("scene walked",
		"context", label,
		"scene", sc.Name(),
		"nodes", w.res.Nodes,
		"findings", w.res.Findings)

	return w.res, nil
}

// visit inspects one node and recurses into its children.
func (s *Scanner) visit(w *walk, id scene.NodeID, depth int) {
	if depth >= s.maxDepth {
		if !w.truncated {
			s.logger.Warn("hierarchy deeper than scan bound, truncating",
				"context", w.label,
				"max_depth", s.maxDepth)
			w.truncated = true
		}
		return
	}

	n := w.sc.Node(id)
	if n == nil {
		return
	}

	w.res.Nodes++
	if s.included(w, id) {
		s.inspectNode(w, id, n)
	}
	for _, child := range n.Children {
		s.visit(w, child, depth+1)
	}
}

// included applies the node filter. Filter evaluation failures are logged
// and the node is inspected anyway.
func (s *Scanner) included(w *walk, id scene.NodeID) bool {
	if s.filter == nil {
		return true
	}
	ok, err := s.filter.Match(w.sc, id)
	if err != nil {
		s.logger.Warn("node filter failed, node included",
			"context", w.label,
			"node", scene.FullPath(w.sc, id),
			"error", err)
		return true
	}
	return ok
}
