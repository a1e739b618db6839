package scene

// NodeID indexes a node within a Scene's node table.
type NodeID int32

// NoNode is the id of a missing node. Root nodes have Parent == NoNode.
const NoNode NodeID = -1

// Node is a single object in a scene hierarchy.
//
// Fields may be mutated freely while a scene is being assembled; scanners
// treat nodes as read-only.
type Node struct {
	// Name is the node's display name, the segment used in paths.
	Name string

	// Active reports whether the node is enabled in its hierarchy.
	// Inactive nodes are still part of the tree.
	Active bool

	// Parent is the id of the parent node, or NoNode for roots.
	Parent NodeID

	// Children holds the ids of child nodes in declaration order.
	Children []NodeID

	// Parts holds the typed parts attached to this node.
	Parts []Part
}

// Scene is an object hierarchy held in a flat node table. Parent and child
// links are NodeIDs into that table.
type Scene struct {
	name  string
	nodes []*Node
	roots []NodeID
}

// NewScene creates an empty scene with the given display name.
func NewScene(name string) *Scene {
	return &Scene{name: name}
}

// Name returns the scene's display name.
func (s *Scene) Name() string {
	return s.name
}

// Len returns the number of nodes in the scene.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Roots returns the ids of the scene's root nodes in insertion order.
func (s *Scene) Roots() []NodeID {
	return s.roots
}

// Node returns the node with the given id, or nil when the id is not a node
// of this scene.
func (s *Scene) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(s.nodes) {
		return nil
	}
	return s.nodes[id]
}

// AddNode appends a node under the given parent and returns its id. Pass
// NoNode as the parent to create a root. The node starts out active.
//
// A parent id that is neither NoNode nor an existing node is rejected and
// NoNode is returned.
func (s *Scene) AddNode(parent NodeID, name string) NodeID {
	if parent != NoNode && s.Node(parent) == nil {
		return NoNode
	}

	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, &Node{
		Name:   name,
		Active: true,
		Parent: parent,
	})

	if parent == NoNode {
		s.roots = append(s.roots, id)
	} else {
		p := s.nodes[parent]
		p.Children = append(p.Children, id)
	}
	return id
}

// Attach appends parts to the node with the given id in order. Unknown ids
// are ignored.
func (s *Scene) Attach(id NodeID, parts ...Part) {
	n := s.Node(id)
	if n == nil {
		return
	}
	n.Parts = append(n.Parts, parts...)
}
