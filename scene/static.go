package scene

// StaticPart is a Part whose type and property table are fixed in memory.
// Document decoding produces StaticParts, and tests use them to assemble
// scenes by hand.
type StaticPart struct {
	name         string
	unresolvable bool
	props        []Property
}

// NewStaticPart creates a part with a resolved type name and the given
// properties.
func NewStaticPart(typeName string, props ...Property) *StaticPart {
	return &StaticPart{name: typeName, props: props}
}

// NewUnresolvableStaticPart creates a part whose type cannot be resolved.
// declared is the type name recorded in the document, possibly empty.
func NewUnresolvableStaticPart(declared string, props ...Property) *StaticPart {
	return &StaticPart{name: declared, unresolvable: true, props: props}
}

// Type implements Part.
func (p *StaticPart) Type() (string, bool) {
	return p.name, !p.unresolvable
}

// OpenProperties implements Part.
func (p *StaticPart) OpenProperties() (PropertySet, error) {
	return &staticPropertySet{props: p.props}, nil
}

type staticPropertySet struct {
	props  []Property
	closed bool
}

func (s *staticPropertySet) Len() int {
	if s.closed {
		return 0
	}
	return len(s.props)
}

func (s *staticPropertySet) At(i int) Property {
	if s.closed || i < 0 || i >= len(s.props) {
		return nil
	}
	return s.props[i]
}

func (s *staticPropertySet) Close() error {
	s.closed = true
	return nil
}

// StaticProperty is a non-reference property with a fixed name and kind.
type StaticProperty struct {
	name string
	kind PropertyKind
}

// NewStaticProperty creates a property with the given name and kind.
func NewStaticProperty(name string, kind PropertyKind) StaticProperty {
	return StaticProperty{name: name, kind: kind}
}

// Name implements Property.
func (p StaticProperty) Name() string {
	return p.name
}

// Kind implements Property.
func (p StaticProperty) Kind() PropertyKind {
	return p.kind
}

// StaticRef is an object-reference property whose resolution state was
// computed when its document was decoded.
type StaticRef struct {
	name     string
	ref      Ref
	resolved bool
	marker   string
	marked   bool
}

// NewStaticRef creates an object-reference property. resolved records
// whether ref mapped to a live target at decode time.
func NewStaticRef(name string, ref Ref, resolved bool) *StaticRef {
	return &StaticRef{name: name, ref: ref, resolved: resolved}
}

// WithMarker records the serialized textual form of the reference target
// and returns the property for chaining.
func (p *StaticRef) WithMarker(marker string) *StaticRef {
	p.marker = marker
	p.marked = true
	return p
}

// Name implements Property.
func (p *StaticRef) Name() string {
	return p.name
}

// Kind implements Property. A StaticRef is always of object-reference kind.
func (p *StaticRef) Kind() PropertyKind {
	return KindObjectRef
}

// Ref implements RefProperty.
func (p *StaticRef) Ref() Ref {
	return p.ref
}

// Resolved implements RefProperty.
func (p *StaticRef) Resolved() bool {
	return p.resolved
}

// RawMarker implements RawMarkerProbe. ok is false when no serialized form
// was recorded for the target.
func (p *StaticRef) RawMarker() (string, bool) {
	return p.marker, p.marked
}
