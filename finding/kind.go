package finding

import "fmt"

// Kind classifies what a finding reports.
type Kind string

const (
	// KindMissingReference indicates a property whose recorded target no
	// longer resolves to a live object or asset.
	KindMissingReference Kind = "missing_reference"

	// KindMissingPart indicates a part whose own type cannot be resolved,
	// typically because its script or class is gone.
	KindMissingPart Kind = "missing_part"
)

// IsValid returns true if the kind is valid.
func (k Kind) IsValid() bool {
	switch k {
	case KindMissingReference, KindMissingPart:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind parses a string into a Kind value.
// Returns an error if the string is not a valid kind.
func ParseKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid finding kind: %s", s)
	}
	return kind, nil
}

// AllKinds returns all valid finding kinds.
func AllKinds() []Kind {
	return []Kind{
		KindMissingReference,
		KindMissingPart,
	}
}
