// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"github.com/avdva/numconv"
	su "github.com/avdva/numconv/internal/strutil"
)

// ParseBinary parses exactly p binary digits into a bit pattern.
// White space is ignored anywhere in the text.
// Returns a *numconv.ParseError with kind InvalidLength, if the number of digits is wrong,
// or InvalidDigit, if all lengths match, but there's a character other than '0' or '1'.
func ParseBinary(text string, p Precision) (uint64, error) {
	if err := p.check(); err != nil {
		return 0, err
	}
	width := int(p.layout().width())
	var (
		bits  uint64
		count int
		bad   *numconv.ParseError
	)
	su.EachNonSpace(text, func(r rune, pos int) bool {
		count++
		switch {
		case bad != nil:
		case r == '0' || r == '1':
			bits = bits<<1 | uint64(r-'0')
		default:
			bad = numconv.NewDigitError(r, pos)
		}
		return true
	})
	if count != width {
		return 0, numconv.NewLengthError(width, count)
	}
	if bad != nil {
		return 0, bad
	}
	return bits, nil
}

// ParseHex parses exactly p/4 hexadecimal digits into a bit pattern.
// The digits are case-insensitive, an optional "0x" or "0X" prefix and white space are ignored.
// Errors are reported the same way as in ParseBinary.
func ParseHex(text string, p Precision) (uint64, error) {
	if err := p.check(); err != nil {
		return 0, err
	}
	width := int(p.layout().width() / 4)
	trimmed, offset := su.TrimHexPrefix(text)
	var (
		bits  uint64
		count int
		bad   *numconv.ParseError
	)
	su.EachNonSpace(trimmed, func(r rune, pos int) bool {
		count++
		if bad != nil {
			return true
		}
		d, ok := su.HexDigit(r)
		if !ok {
			bad = numconv.NewDigitError(r, pos+offset)
			return true
		}
		bits = bits<<4 | uint64(d)
		return true
	})
	if count != width {
		return 0, numconv.NewLengthError(width, count)
	}
	if bad != nil {
		return 0, bad
	}
	return bits, nil
}

// ComposeFromBinaryText returns the value encoded by the binary digits of text.
// It is the exact inverse of Decompose(v, p).BinaryText.
func ComposeFromBinaryText(text string, p Precision) (float64, error) {
	bits, err := ParseBinary(text, p)
	if err != nil {
		return 0, err
	}
	return fromBits(bits, p), nil
}

// ComposeFromHexText returns the value encoded by the hexadecimal digits of text.
// It is the exact inverse of Decompose(v, p).HexText.
func ComposeFromHexText(text string, p Precision) (float64, error) {
	bits, err := ParseHex(text, p)
	if err != nil {
		return 0, err
	}
	return fromBits(bits, p), nil
}
