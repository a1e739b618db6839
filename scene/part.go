package scene

import (
	"io"

	"github.com/google/uuid"
)

// MissingMarkerPrefix is the prefix serializers write into the textual form
// of a reference whose target could not be restored, for example
// "Missing (Prefab)". A dangling reference may carry the marker even when
// its raw identifier reads as zero.
const MissingMarkerPrefix = "Missing"

// Ref is the recorded target of an object-reference property. A target is
// either another object in the same document, addressed by local id, or an
// asset addressed by catalog GUID.
type Ref struct {
	// ID is the document-local object id. Zero means no local target.
	ID int64 `json:"id,omitempty"`

	// GUID addresses an asset in the project catalog. uuid.Nil means no
	// asset target.
	GUID uuid.UUID `json:"guid,omitempty"`
}

// IsZero reports whether the reference records no target at all.
func (r Ref) IsZero() bool {
	return r.ID == 0 && r.GUID == uuid.Nil
}

// Part is a typed block of behavior or data attached to a node.
type Part interface {
	// Type returns the part's resolved type name. ok is false when the
	// type cannot be resolved (its script or class is gone); name is then
	// whatever the document declared, possibly empty.
	Type() (name string, ok bool)

	// OpenProperties opens the part's property table. The returned set is
	// only valid until closed, and the caller must close it.
	OpenProperties() (PropertySet, error)
}

// PropertySet is a scoped view over a part's properties.
type PropertySet interface {
	io.Closer

	// Len returns the number of properties in the set.
	Len() int

	// At returns the property at index i, or nil when i is out of range.
	At(i int) Property
}

// Property is a single named, typed slot on a part.
type Property interface {
	Name() string
	Kind() PropertyKind
}

// RefProperty is a property of object-reference kind, exposing its recorded
// target and whether that target resolved when the document was decoded.
type RefProperty interface {
	Property

	// Ref returns the recorded raw target.
	Ref() Ref

	// Resolved reports whether the recorded target mapped to a live
	// object or a cataloged asset.
	Resolved() bool
}

// RawMarkerProbe optionally exposes the serialized textual form of a
// reference target. Property implementations that cannot read the
// serialized form either do not implement the interface or return
// ok == false.
type RawMarkerProbe interface {
	RawMarker() (marker string, ok bool)
}
