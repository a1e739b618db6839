package scene

import "fmt"

// PropertyKind classifies the value a part property holds.
type PropertyKind string

const (
	// KindObjectRef is a reference to another object or asset.
	KindObjectRef PropertyKind = "ref"

	// KindString is a plain text value.
	KindString PropertyKind = "string"

	// KindNumber is a numeric value.
	KindNumber PropertyKind = "number"

	// KindBool is a boolean flag.
	KindBool PropertyKind = "bool"

	// KindVector is a multi-component vector value.
	KindVector PropertyKind = "vector"

	// KindColor is an RGBA color value.
	KindColor PropertyKind = "color"
)

// IsValid returns true if the property kind is valid.
func (k PropertyKind) IsValid() bool {
	switch k {
	case KindObjectRef, KindString, KindNumber, KindBool, KindVector, KindColor:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k PropertyKind) String() string {
	return string(k)
}

// ParsePropertyKind parses a string into a PropertyKind value.
// Returns an error if the string is not a valid kind.
func ParsePropertyKind(s string) (PropertyKind, error) {
	kind := PropertyKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid property kind: %s", s)
	}
	return kind, nil
}

// AllPropertyKinds returns all valid property kinds.
func AllPropertyKinds() []PropertyKind {
	return []PropertyKind{
		KindObjectRef,
		KindString,
		KindNumber,
		KindBool,
		KindVector,
		KindColor,
	}
}
