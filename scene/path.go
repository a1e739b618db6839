package scene

import (
	"slices"
	"strings"
)

// MaxPathDepth bounds how many parent links the path functions follow.
// A hierarchy deeper than this is treated as malformed.
const MaxPathDepth = 100

// FullPath returns the node names from the tree root down to id, joined by
// "/". It returns "" when id is not a node of s or the parent chain exceeds
// MaxPathDepth.
func FullPath(s *Scene, id NodeID) string {
	names, ok := climb(s, id, NoNode)
	if !ok {
		return ""
	}
	return strings.Join(names, "/")
}

// RelativePath returns the node names from root down to target inclusive,
// joined by "/". The second result is false when root is not target or one
// of its ancestors.
func RelativePath(s *Scene, root, target NodeID) (string, bool) {
	if s.Node(root) == nil {
		return "", false
	}
	names, ok := climb(s, target, root)
	if !ok {
		return "", false
	}
	return strings.Join(names, "/"), true
}

// Depth returns the number of parent links between id and its root, capped
// at MaxPathDepth. Unknown ids have depth zero.
func Depth(s *Scene, id NodeID) int {
	depth := 0
	n := s.Node(id)
	for n != nil && n.Parent != NoNode && depth < MaxPathDepth {
		depth++
		n = s.Node(n.Parent)
	}
	return depth
}

// climb follows parent links from id upward, collecting names, and returns
// them in root-first order. With stop == NoNode it climbs to the tree root;
// otherwise it stops at stop inclusive and fails when the root is reached
// without meeting it. It also fails after MaxPathDepth parent links.
func climb(s *Scene, id, stop NodeID) ([]string, bool) {
	var names []string
	cur := id
	for hops := 0; hops <= MaxPathDepth; hops++ {
		n := s.Node(cur)
		if n == nil {
			return nil, false
		}
		names = append(names, n.Name)
		if cur == stop {
			slices.Reverse(names)
			return names, true
		}
		if n.Parent == NoNode {
			if stop != NoNode {
				return nil, false
			}
			slices.Reverse(names)
			return names, true
		}
		cur = n.Parent
	}
	return nil, false
}
