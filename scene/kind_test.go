package scene

import "testing"

func TestPropertyKindIsValid(t *testing.T) {
	tests := []struct {
		kind PropertyKind
		want bool
	}{
		{KindObjectRef, true},
		{KindString, true},
		{KindNumber, true},
		{KindBool, true},
		{KindVector, true},
		{KindColor, true},
		{PropertyKind("quaternion"), false},
		{PropertyKind(""), false},
	}

	for _, tt := range tests {
		if got := tt.kind.IsValid(); got != tt.want {
			t.Errorf("PropertyKind(%q).IsValid() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestParsePropertyKind(t *testing.T) {
	kind, err := ParsePropertyKind("ref")
	if err != nil {
		t.Fatalf("ParsePropertyKind(\"ref\") returned error: %v", err)
	}
	if kind != KindObjectRef {
		t.Errorf("ParsePropertyKind(\"ref\") = %q, want %q", kind, KindObjectRef)
	}

	if _, err := ParsePropertyKind("matrix"); err == nil {
		t.Error("ParsePropertyKind(\"matrix\") should return an error")
	}
}

func TestAllPropertyKinds(t *testing.T) {
	kinds := AllPropertyKinds()
	if len(kinds) != 6 {
		t.Fatalf("AllPropertyKinds() returned %d kinds, want 6", len(kinds))
	}
	for _, k := range kinds {
		if !k.IsValid() {
			t.Errorf("AllPropertyKinds() contains invalid kind %q", k)
		}
	}
}
