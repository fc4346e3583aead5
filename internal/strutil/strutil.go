// Package strutil contains helpers for cleaning up digit strings before they are parsed.
package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EachNonSpace calls fn for every rune of s, which is not a white space.
// pos is the 1-based rune position of r in s, white space included.
// Iteration stops, if fn returns false.
func EachNonSpace(s string, fn func(r rune, pos int) bool) {
	pos := 0
	for _, r := range s {
		pos++
		if unicode.IsSpace(r) {
			continue
		}
		if !fn(r, pos) {
			return
		}
	}
}

// TrimHexPrefix removes leading white space and an optional "0x" or "0X" prefix.
// offset is the number of runes removed.
func TrimHexPrefix(s string) (trimmed string, offset int) {
	trimmed = strings.TrimLeftFunc(s, unicode.IsSpace)
	offset = utf8.RuneCountInString(s[:len(s)-len(trimmed)])
	if len(trimmed) >= 2 && trimmed[0] == '0' && (trimmed[1] == 'x' || trimmed[1] == 'X') {
		trimmed = trimmed[2:]
		offset += 2
	}
	return trimmed, offset
}

// HexDigit returns the value of a hexadecimal digit, case-insensitive.
// ok is false if r is not a hex digit.
func HexDigit(r rune) (value int, ok bool) {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0'), true
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}
