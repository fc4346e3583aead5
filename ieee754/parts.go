// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ieee754 decomposes floating-point values into IEEE 754 sign, exponent
// and mantissa fields, and composes values back from binary or hexadecimal bit patterns.
//
// Half (16), single (32) and double (64) bit precisions are supported.
// All functions are pure and safe for concurrent use.
package ieee754

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SpecialKind classifies a bit pattern by its exponent and mantissa fields.
type SpecialKind int

const (
	// None is a normal number.
	None SpecialKind = iota
	PositiveZero
	NegativeZero
	// Subnormal has a zero exponent field and a nonzero mantissa.
	Subnormal
	PositiveInfinity
	NegativeInfinity
	// NaN has an all-ones exponent field and a nonzero mantissa. Its sign is not meaningful.
	NaN
)

var specialNames = [...]string{
	None:             "Normal",
	PositiveZero:     "+0",
	NegativeZero:     "-0",
	Subnormal:        "Subnormal",
	PositiveInfinity: "+Infinity",
	NegativeInfinity: "-Infinity",
	NaN:              "NaN",
}

func (k SpecialKind) String() string {
	if k < 0 || int(k) >= len(specialNames) {
		return "SpecialKind(" + strconv.Itoa(int(k)) + ")"
	}
	return specialNames[k]
}

// 64 zeros, enough to pad any bit pattern.
const manyZeros = "0000000000000000000000000000000000000000000000000000000000000000"

// FloatParts is a floating-point value split into its IEEE 754 fields.
//
//	 sign  exponent    mantissa
//	 |     |           |
//	 s     eeeeeeee    mmmmmmmmmmmmmmmmmmmmmmm    (Single)
//
// FloatParts are immutable values, created by Decompose or FromBits.
type FloatParts struct {
	Precision Precision
	// Sign is 0 or 1.
	Sign uint8
	// Exponent is the biased exponent field as stored.
	Exponent uint16
	// Mantissa is the stored fraction field, without the implicit leading 1.
	Mantissa uint64
	// Bits is the whole pattern: sign, exponent and mantissa, most significant bit first.
	Bits uint64
	// BinaryText is Bits as zero-padded binary digits, Precision digits long.
	BinaryText string
	// HexText is Bits as "0x" followed by zero-padded upper case hex digits.
	HexText string
	// Value is the number the pattern encodes.
	// For Half and Single it is the narrowed value, widened back to float64 without loss.
	Value   float64
	Special SpecialKind
}

// Decompose narrows v to p, rounding to nearest even, and splits the result into fields.
// NaNs and infinities are accepted.
// Decompose panics, if p is not a supported precision.
func Decompose(v float64, p Precision) FloatParts {
	p.layout()
	return FromBits(toBits(v, p), p)
}

// FromBits splits a bit pattern of precision p into fields.
// Bits above the width of p are ignored.
// FromBits panics, if p is not a supported precision.
func FromBits(bits uint64, p Precision) FloatParts {
	l := p.layout()
	width := l.width()
	if width < 64 {
		bits &= 1<<width - 1
	}
	parts := FloatParts{
		Precision: p,
		Sign:      uint8(bits >> (width - 1)),
		Exponent:  uint16(bits >> l.mantBits & l.expMask()),
		Mantissa:  bits & l.mantMask(),
		Bits:      bits,
		Value:     fromBits(bits, p),
	}
	parts.Special = classify(parts.Sign, uint64(parts.Exponent), parts.Mantissa, l)
	parts.BinaryText = pad(strconv.FormatUint(bits, 2), int(width))
	parts.HexText = "0x" + strings.ToUpper(pad(strconv.FormatUint(bits, 16), int(width/4)))
	return parts
}

func classify(sign uint8, exponent, mantissa uint64, l layout) SpecialKind {
	switch exponent {
	case l.expMask():
		switch {
		case mantissa != 0:
			return NaN
		case sign == 1:
			return NegativeInfinity
		default:
			return PositiveInfinity
		}
	case 0:
		switch {
		case mantissa != 0:
			return Subnormal
		case sign == 1:
			return NegativeZero
		default:
			return PositiveZero
		}
	default:
		return None
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return manyZeros[:width-len(s)] + s
}

// UnbiasedExponent returns the exponent field minus the bias of the precision.
func (fp FloatParts) UnbiasedExponent() int {
	return UnbiasedExponent(uint(fp.Exponent), fp.Precision)
}

// IsFinite returns true, if the value is neither an infinity nor a NaN.
func (fp FloatParts) IsFinite() bool {
	switch fp.Special {
	case PositiveInfinity, NegativeInfinity, NaN:
		return false
	default:
		return true
	}
}

// GroupedBinary returns BinaryText with the sign, exponent and mantissa fields separated by spaces,
// like "0 10000000 10010001111010111000011".
func (fp FloatParts) GroupedBinary() string {
	l := fp.Precision.layout()
	s := fp.BinaryText
	return s[:1] + " " + s[1:1+l.expBits] + " " + s[1+l.expBits:]
}

// ValueString returns the shortest decimal text, which identifies Value at its precision.
// Half values are printed with float32 precision.
func (fp FloatParts) ValueString() string {
	bitSize := 32
	if fp.Precision == Double {
		bitSize = 64
	}
	return strconv.FormatFloat(fp.Value, 'g', -1, bitSize)
}

// String returns a short description, like "0x4048F5C3 (3.14)".
func (fp FloatParts) String() string {
	return fp.HexText + " (" + fp.ValueString() + ")"
}

// GoString returns debug string representation.
func (fp FloatParts) GoString() string {
	return fp.String() + fmt.Sprintf(" {s=%d, e=%d, m=%d, %s}", fp.Sign, fp.Exponent, fp.Mantissa, fp.Special)
}

type jsonParts struct {
	Precision int    `json:"precision"`
	Sign      uint8  `json:"sign"`
	Exponent  uint16 `json:"exponent"`
	Unbiased  int    `json:"unbiasedExponent"`
	Mantissa  uint64 `json:"mantissa"`
	Binary    string `json:"binary"`
	Hex       string `json:"hex"`
	Value     string `json:"value"`
	Special   string `json:"special"`
}

// MarshalJSON marshals all fields. The value is a string, so that NaN and infinities are valid json.
func (fp FloatParts) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonParts{
		Precision: int(fp.Precision),
		Sign:      fp.Sign,
		Exponent:  fp.Exponent,
		Unbiased:  fp.UnbiasedExponent(),
		Mantissa:  fp.Mantissa,
		Binary:    fp.BinaryText,
		Hex:       fp.HexText,
		Value:     fp.ValueString(),
		Special:   fp.Special.String(),
	})
}
