// Package charset decodes zip names and comments.
//
// Entries with general purpose flag bit 11 set store UTF-8. Everything else
// is IBM code page 437, the format's legacy encoding.
package charset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// FlagUTF8 is the general purpose flag bit marking UTF-8 names and comments.
const FlagUTF8 uint16 = 1 << 11

// Decode returns b as a string, translating from code page 437 unless the
// flags mark it as UTF-8. Pure ASCII is returned unchanged either way.
func Decode(b []byte, flags uint16) string {
	if flags&FlagUTF8 != 0 || isASCII(b) {
		return string(b)
	}
	s, err := charmap.CodePage437.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// NeedsUTF8 reports whether s has any byte outside ASCII.
func NeedsUTF8(s string) bool {
	for i := range len(s) {
		if s[i] >= utf8.RuneSelf {
			return true
		}
	}
	return false
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
