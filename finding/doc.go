// Package finding defines the findings produced by reference scans and how
// they are rendered.
//
// # Core Types
//
// Finding describes one broken reference discovered on a scene node. It
// carries the context label of the search that produced it, the full
// hierarchy path of the node, the part type, the humanized property name,
// and the id of the originating node so a host can navigate to it.
//
// # Kinds
//
// Findings come in two kinds:
//   - missing_reference: a property of object-reference kind whose recorded
//     target no longer resolves to a live object or asset
//   - missing_part: a part whose own type cannot be resolved
//
// # Messages
//
// Message renders the single log line a finding is reported as:
//
//	Missing Ref in: [Scenes/Level01.scene.yaml]Root/Camera. Component: FollowCamera, Property: Target, RelativePath: Camera
//
// Property names are humanized with NicifyName before they reach a message:
// serialization prefixes are dropped and words are split before capitals.
//
// # Export
//
// Collected findings can be written as JSON or CSV with Write, for hosts
// that post-process scan results.
package finding
