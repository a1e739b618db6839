// Package scene models serialized object hierarchies: nodes arranged in
// rooted trees, each node carrying typed parts whose properties may
// reference other objects or assets.
//
// # Storage
//
// A Scene keeps its nodes in a flat table indexed by NodeID. Parent and
// child links are ids into that table; NoNode marks the absence of a node.
// Scenes are built once with AddNode and Attach and are read-only while
// being scanned.
//
// # Parts and properties
//
// A Part exposes its resolved type through Type and, through
// OpenProperties, a scoped PropertySet that the caller must close.
// Properties of object-reference kind additionally implement RefProperty,
// exposing the recorded target (Ref) and whether that target resolved when
// the document was decoded. Implementations that can also read the
// serialized textual form of a target implement RawMarkerProbe.
//
// The Static types are the in-memory implementations of these interfaces,
// produced by document decoding and by tests:
//
//	part := scene.NewStaticPart("FollowCamera",
//	    scene.NewStaticRef("target", scene.Ref{ID: 42}, false),
//	)
//
// # Paths
//
// FullPath and RelativePath render hierarchy positions as node names joined
// by "/", root first. Both follow at most MaxPathDepth parent links, so a
// malformed hierarchy yields an empty or absent path instead of looping.
package scene
