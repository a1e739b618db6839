package finding

import (
	"fmt"

	"github.com/lanternworks/refscan/scene"
)

// Finding represents a single broken reference discovered during a scan.
// Findings are plain values: they are reported as they are found and carry
// no state beyond the scan that produced them.
type Finding struct {
	// Kind classifies the finding.
	Kind Kind `json:"kind"`

	// Context is the label of the search that produced the finding,
	// typically a scene path or "Project".
	Context string `json:"context"`

	// NodePath is the full hierarchy path of the node the finding was
	// discovered on, root first, joined by "/".
	NodePath string `json:"node_path"`

	// Part is the type name of the part carrying the broken reference.
	// For KindMissingPart it is the declared type name, possibly empty.
	Part string `json:"part,omitempty"`

	// Property is the humanized name of the broken property.
	// Empty for KindMissingPart.
	Property string `json:"property,omitempty"`

	// RelativePath locates the part's owning node relative to the node
	// the inspection started from. Empty when it could not be resolved.
	RelativePath string `json:"relative_path,omitempty"`

	// Node is the id of the originating node within the scanned scene.
	// Hosts use it to navigate to the object.
	Node scene.NodeID `json:"node"`
}

// NewMissingReference creates a finding for a dangling object reference.
// property should already be humanized with NicifyName.
func NewMissingReference(context string, node scene.NodeID, nodePath, part, property, relativePath string) Finding {
	return Finding{
		Kind:         KindMissingReference,
		Context:      context,
		NodePath:     nodePath,
		Part:         part,
		Property:     property,
		RelativePath: relativePath,
		Node:         node,
	}
}

// NewMissingPart creates a finding for a part whose type cannot be
// resolved. declared is the type name recorded in the document, possibly
// empty.
func NewMissingPart(context string, node scene.NodeID, nodePath, declared string) Finding {
	return Finding{
		Kind:     KindMissingPart,
		Context:  context,
		NodePath: nodePath,
		Part:     declared,
		Node:     node,
	}
}

// Message renders the finding as the single line it is reported as.
func (f Finding) Message() string {
	switch f.Kind {
	case KindMissingPart:
		if f.Part != "" {
			return fmt.Sprintf("Missing Part in: [%s]%s. Declared: %s", f.Context, f.NodePath, f.Part)
		}
		return fmt.Sprintf("Missing Part in: [%s]%s", f.Context, f.NodePath)
	default:
		return fmt.Sprintf("Missing Ref in: [%s]%s. Component: %s, Property: %s, RelativePath: %s",
			f.Context, f.NodePath, f.Part, f.Property, f.RelativePath)
	}
}

// Validate checks if the finding has all required fields and valid values.
func (f Finding) Validate() error {
	if !f.Kind.IsValid() {
		return fmt.Errorf("invalid kind: %s", f.Kind)
	}
	if f.NodePath == "" {
		return fmt.Errorf("node path is required")
	}
	if f.Kind == KindMissingReference && f.Property == "" {
		return fmt.Errorf("property is required for %s findings", KindMissingReference)
	}
	return nil
}
