// Package refscan finds missing references in serialized scene graphs.
//
// A scene is a rooted tree of nodes, each carrying typed parts whose
// properties may reference other objects or assets. When a referenced
// object disappears while the reference's recorded identifier survives,
// the reference dangles. Scanner walks every node reachable from a scene's
// roots, classifies every object-reference property as present, null, or
// dangling, and reports a finding for each dangling reference and for each
// part whose own type no longer resolves.
//
// # Classification
//
// A reference is dangling when its target does not resolve and the
// serialized data still shows evidence of one:
//
//   - the recorded raw identifier is non-zero, or
//   - the serialized textual form begins with the "Missing" marker prefix
//
// An unresolved reference with a zero identifier and no marker is an
// explicit null, which is legal and never reported. Inactive nodes are
// walked and diagnosed like any other; a disabled subtree can still ship
// broken references.
//
// # Scanning
//
//	scanner, err := refscan.New(
//	    refscan.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := scanner.ScanScene(ctx, "Scenes/Level01.scene.yaml", sc)
//
// Findings are reported through a Reporter as they are discovered; the
// default reporter writes one error-level log record per finding. Findings
// are ephemeral: a scan holds no state between runs and its results live
// only in the log and in whatever Reporter the host supplied.
//
// # Sources
//
// ScanSources runs independent traversals over lazily loaded scenes, one
// at a time. A source that fails to load is logged and skipped; the
// remaining sources still run. The project package provides sources for
// the manifest's current scene, for all enabled scenes, and for the
// project asset root.
//
// # Filtering
//
// A Filter restricts which nodes are inspected; children of filtered-out
// nodes are still traversed. The filter package compiles CEL expressions
// over node facts into Filters:
//
//	f, err := filter.Compile(`active && depth < 3`)
//	scanner, err := refscan.New(refscan.WithFilter(f))
//
// # Observability
//
// Scans emit one span per scene plus batched counters when a tracer or
// meter is configured with WithTracer and WithMeter; both default to
// no-op implementations. The telemetry package provides a log-backed span
// exporter for runs without a collector.
//
// # Error Handling
//
// The package uses sentinel errors and the structured ScanError type:
//
//	if err != nil {
//	    if errors.Is(err, refscan.ErrNilScene) {
//	        // Handle the programming error
//	    }
//	}
package refscan
