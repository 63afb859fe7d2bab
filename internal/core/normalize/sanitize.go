package normalize

import "strings"

// Sanitize makes a raw cell or header safe to compare and display
// - invalid UTF-8 bytes are dropped
// - tab, CR and LF become a plain space so multi-line quoted cells read as one line
// - other C0 controls, DEL, C1 controls and the BOM are dropped
// The fast path returns s unchanged when nothing needs cleaning
func Sanitize(s string) string {
	if s == "" || clean(s) {
		return s
	}
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case r < 0x20, r == 0x7F, r >= 0x80 && r <= 0x9F, r == '\uFEFF':
			return -1
		}
		return r
	}, s)
}

// clean reports whether s is plain printable ASCII, the common case for headers
func clean(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c >= 0x7F {
			return false
		}
	}
	return true
}
