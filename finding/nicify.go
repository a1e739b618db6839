package finding

import (
	"strings"
	"unicode"
)

// NicifyName converts a serialized property name into the display form used
// in finding messages: serialization prefixes are dropped, words are split
// before capitals and at underscores, and the first letter of each word is
// upper-cased. Runs of capitals stay together.
//
//	NicifyName("m_TargetCamera") == "Target Camera"
//	NicifyName("groundCheck")    == "Ground Check"
//	NicifyName("max_speed")      == "Max Speed"
//	NicifyName("maxHP")          == "Max HP"
func NicifyName(name string) string {
	trimmed := strings.TrimPrefix(name, "m_")
	trimmed = strings.TrimPrefix(trimmed, "_")

	runes := []rune(trimmed)
	var b strings.Builder
	b.Grow(len(trimmed) + 8)

	startWord := false
	for i, r := range runes {
		if r == '_' || r == ' ' {
			startWord = true
			continue
		}
		switch {
		case b.Len() == 0:
			b.WriteRune(unicode.ToUpper(r))
		case startWord:
			b.WriteByte(' ')
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r) && wordBoundary(runes, i):
			b.WriteByte(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		startWord = false
	}
	return b.String()
}

// wordBoundary reports whether the upper-case rune at i starts a new word:
// either the previous rune is lower case or a digit, or a run of capitals
// ends here because the next rune is lower case.
func wordBoundary(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}
	return false
}
