package refscan

import (
	"strings"

	"github.com/lanternworks/refscan/finding"
	"github.com/lanternworks/refscan/scene"
)

// inspectNode classifies every part attached to the node, in order.
func (s *Scanner) inspectNode(w *walk, id scene.NodeID, n *scene.Node) {
	for _, part := range n.Parts {
		s.inspectPart(w, id, part)
	}
}

// inspectPart reports the part itself when its type cannot be resolved;
// otherwise it opens the part's property table and classifies every
// object-reference property in it. The property set is closed before the
// next part is inspected.
func (s *Scanner) inspectPart(w *walk, id scene.NodeID, part scene.Part) {
	w.res.Parts++
	nodePath := scene.FullPath(w.sc, id)

	typeName, ok := part.Type()
	if !ok {
		s.report(w, finding.NewMissingPart(w.label, id, nodePath, typeName))
		return
	}

	props, err := part.OpenProperties()
	if err != nil {
		s.logger.Warn("cannot open part properties",
			"context", w.label,
			"node", nodePath,
			"part", typeName,
			"error", err)
		return
	}
	defer CloseWithLog(props, s.logger, "property set")

	for i := 0; i < props.Len(); i++ {
		prop := props.At(i)
		if prop == nil || prop.Kind() != scene.KindObjectRef {
			continue
		}

		ref, ok := prop.(scene.RefProperty)
		if !ok {
			s.logger.Warn("reference property exposes no target state",
				"context", w.label,
				"node", nodePath,
				"part", typeName,
				"property", prop.Name())
			continue
		}

		w.res.Refs++
		if !missing(ref) {
			continue
		}

		rel, ok := scene.RelativePath(w.sc, id, id)
		if !ok {
			rel = ""
		}
		s.report(w, finding.NewMissingReference(
			w.label, id, nodePath, typeName, finding.NicifyName(prop.Name()), rel))
	}
}

// missing classifies a reference as dangling: its target did not resolve
// and the serialized data still shows evidence of one, either a non-zero
// raw identifier or a textual form carrying the missing marker. An
// unresolved reference with a zero identifier and no marker is an explicit
// null, which is legal.
//
// The raw marker probe is optional. When a property does not support it,
// classification degrades to identifier evidence alone.
func missing(ref scene.RefProperty) bool {
	if ref.Resolved() {
		return false
	}
	if !ref.Ref().IsZero() {
		return true
	}
	if probe, ok := ref.(scene.RawMarkerProbe); ok {
		if marker, ok := probe.RawMarker(); ok && strings.HasPrefix(marker, scene.MissingMarkerPrefix) {
			return true
		}
	}
	return false
}

// report forwards a finding to the reporter and counts it.
func (s *Scanner) report(w *walk, f finding.Finding) {
	s.reporter.Report(f)
	w.res.Findings++
}
